//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Runs go mod tidy and then compiles the binary into bin/.
func (Build) Binary() error {
	if err := goTidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/trimotion", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet and the full test suite.
func (Build) Check() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Removes build artifacts.
func (Build) Clean() error {
	return os.RemoveAll("bin")
}
