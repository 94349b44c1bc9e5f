package anim

import (
	"fmt"

	"github.com/cj-mills/trimotion/studio/core"
	"github.com/cj-mills/trimotion/studio/scene"
)

// Action collects every channel recorded for one object.
type Action struct {
	name      string
	owner     core.Handle
	ownerName string
	channels  map[string]*Channel
	order     []string
}

func (a *Action) Name() string {
	return a.name
}

func (a *Action) Owner() core.Handle {
	return a.owner
}

func (a *Action) Channel(path string) (*Channel, bool) {
	c, ok := a.channels[path]
	return c, ok
}

// Channels lists the channels in recording order.
func (a *Action) Channels() []*Channel {
	out := make([]*Channel, 0, len(a.order))
	for _, p := range a.order {
		out = append(out, a.channels[p])
	}
	return out
}

func (a *Action) channelFor(attr *attribute) *Channel {
	if c, ok := a.channels[attr.path]; ok {
		return c
	}
	c := newChannel(attr.path, attr.components)
	a.channels[attr.path] = c
	a.order = append(a.order, attr.path)
	return c
}

// System owns the animation data of a document, one action per animated
// object, keyed by the object handle.
type System struct {
	actions map[core.Handle]*Action
	order   []core.Handle
}

func NewSystem() *System {
	return &System{
		actions: make(map[core.Handle]*Action),
	}
}

// KeyframeInsert snapshots the attribute's current value into the object's
// channel for that path. The first key on an object creates its action.
func (s *System) KeyframeInsert(obj *scene.Object, path string, frame float64) error {
	attr, err := resolveAttribute(obj, path)
	if err != nil {
		return err
	}
	s.insertResolved(obj, attr, frame)
	return nil
}

func (s *System) insertResolved(obj *scene.Object, attr *attribute, frame float64) {
	act := s.actionFor(obj)
	act.channelFor(attr).insert(frame, attr.get())
}

func (s *System) actionFor(obj *scene.Object) *Action {
	if act, ok := s.actions[obj.Handle()]; ok {
		return act
	}
	act := &Action{
		name:      obj.Name() + "Action",
		owner:     obj.Handle(),
		ownerName: obj.Name(),
		channels:  make(map[string]*Channel),
	}
	s.actions[obj.Handle()] = act
	s.order = append(s.order, obj.Handle())
	core.LogDebug("animation system created action %q", act.name)
	return act
}

// Action returns the action recorded for the object, if any.
func (s *System) Action(obj *scene.Object) (*Action, bool) {
	if obj == nil {
		return nil, false
	}
	act, ok := s.actions[obj.Handle()]
	return act, ok
}

// Actions lists the actions in creation order.
func (s *System) Actions() []*Action {
	out := make([]*Action, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, s.actions[h])
	}
	return out
}

// Channel returns the channel recorded for one path on one object.
func (s *System) Channel(obj *scene.Object, path string) (*Channel, bool) {
	act, ok := s.Action(obj)
	if !ok {
		return nil, false
	}
	return act.Channel(path)
}

// Evaluate samples the recorded animation for one path on one object.
func (s *System) Evaluate(obj *scene.Object, path string, frame float64) (Value, error) {
	ch, ok := s.Channel(obj, path)
	if !ok {
		name := "<nil>"
		if obj != nil {
			name = obj.Name()
		}
		return nil, fmt.Errorf("no channel %q recorded for %q: %w", path, name, core.ErrResourceUnavailable)
	}
	return ch.Evaluate(frame), nil
}

func (s *System) ActionCount() int {
	return len(s.actions)
}

func (s *System) ChannelCount() int {
	n := 0
	for _, act := range s.actions {
		n += len(act.channels)
	}
	return n
}

func (s *System) KeyframeCount() int {
	n := 0
	for _, act := range s.actions {
		for _, ch := range act.channels {
			n += ch.Len()
		}
	}
	return n
}
