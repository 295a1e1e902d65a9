package keymap

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/input/key"
)

// ErrUnknownAction is returned when an override names no known action.
var ErrUnknownAction = errors.New("unknown action")

// unbound disables an action when used as an override value.
const unbound = "none"

// Keymap resolves key events to actions.
type Keymap struct {
	bindings map[key.Event]Action
	keys     map[Action][]key.Event
}

// Default returns the keymap with only the built-in bindings.
func Default() *Keymap {
	km, err := New(nil)
	if err != nil {
		panic("keymap: invalid default bindings: " + err.Error())
	}
	return km
}

// New builds a keymap from the defaults with overrides applied.
// Overrides map action names to comma separated key specifications.
// A key claimed by an override is removed from any other action.
// Errors wrap config.ErrInvalidValue.
func New(overrides map[string]string) (*Keymap, error) {
	km := &Keymap{
		bindings: make(map[key.Event]Action),
		keys:     make(map[Action][]key.Event),
	}

	for _, b := range defaultBindings {
		for _, spec := range b.Keys {
			km.bind(key.MustParse(spec), b.Action)
		}
	}

	// Apply in sorted order so conflicting overrides resolve the same way
	// on every run.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := Action(name)
		if !action.Valid() {
			return nil, fmt.Errorf("%w: keys.%s: %w", config.ErrInvalidValue, name, ErrUnknownAction)
		}
		events, err := parseSpecs(overrides[name])
		if err != nil {
			return nil, fmt.Errorf("%w: keys.%s: %w", config.ErrInvalidValue, name, err)
		}
		km.unbindAction(action)
		for _, ev := range events {
			km.bind(ev, action)
		}
	}

	return km, nil
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	action, ok := k.bindings[ev.Normalize()]
	return action, ok
}

// Keys returns the key events bound to action.
func (k *Keymap) Keys(action Action) []key.Event {
	return append([]key.Event(nil), k.keys[action]...)
}

// Help writes one line per action with its bound keys, in default
// binding order. Unbound actions are skipped.
func (k *Keymap) Help(w io.Writer) error {
	for _, b := range defaultBindings {
		events := k.keys[b.Action]
		if len(events) == 0 {
			continue
		}
		names := make([]string, len(events))
		for i, ev := range events {
			names[i] = ev.String()
		}
		if _, err := fmt.Fprintf(w, "  %-18s %-26s %s\n", strings.Join(names, ", "), b.Description, b.Action); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bound keys.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

func (k *Keymap) bind(ev key.Event, action Action) {
	ev = ev.Normalize()
	if prev, ok := k.bindings[ev]; ok {
		k.removeKey(prev, ev)
	}
	k.bindings[ev] = action
	k.keys[action] = append(k.keys[action], ev)
}

func (k *Keymap) unbindAction(action Action) {
	for _, ev := range k.keys[action] {
		delete(k.bindings, ev)
	}
	delete(k.keys, action)
}

func (k *Keymap) removeKey(action Action, ev key.Event) {
	evs := k.keys[action]
	for i, e := range evs {
		if e == ev {
			k.keys[action] = append(evs[:i:i], evs[i+1:]...)
			return
		}
	}
}

func parseSpecs(value string) ([]key.Event, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, unbound) {
		return nil, nil
	}
	var events []key.Event
	for _, spec := range strings.Split(value, ",") {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
