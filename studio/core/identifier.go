package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Handle identifies a datablock for the lifetime of the process.
// Handles are never reused; names are.
type Handle = uuid.UUID

var NilHandle = uuid.Nil

func NewHandle() Handle {
	return uuid.New()
}

// UniqueName returns base unchanged when taken reports it free, otherwise
// the first free "stem.NNN" counting up from 001. A base that already
// carries a three-digit suffix counts up from its stem, so a copy of
// "Cone.001" becomes "Cone.002".
func UniqueName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	stem := base
	next := 1
	if i := strings.LastIndexByte(base, '.'); i >= 0 && len(base)-i-1 == 3 {
		if n, err := strconv.Atoi(base[i+1:]); err == nil {
			stem = base[:i]
			next = n + 1
		}
	}
	for {
		name := fmt.Sprintf("%s.%03d", stem, next)
		if !taken(name) {
			return name
		}
		next++
	}
}
