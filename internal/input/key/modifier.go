package key

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

// Modifier bits. Shift is only meaningful for special keys; for characters
// it is already part of the rune.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// modifierOrder is the order modifiers are written in.
var modifierOrder = []struct {
	mod  Modifier
	name string
	vim  string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModMeta, "Meta", "D"},
	{ModShift, "Shift", "S"},
}

// Has reports whether every bit of mod is set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// With adds mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without clears mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String joins the modifier names with "+", e.g. "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// vimPrefix returns the "C-S-" style prefix used inside angle brackets.
func (m Modifier) vimPrefix() string {
	var sb strings.Builder
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			sb.WriteString(o.vim)
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// modifierAliases maps lower-case modifier names to bits. Single letters
// are the Vim spellings.
var modifierAliases = map[string]Modifier{
	"ctrl": ModCtrl, "control": ModCtrl, "c": ModCtrl,
	"alt": ModAlt, "option": ModAlt, "opt": ModAlt, "a": ModAlt, "m": ModAlt,
	"shift": ModShift, "s": ModShift,
	"meta": ModMeta, "cmd": ModMeta, "super": ModMeta, "d": ModMeta,
}

// ModifierFromName returns the modifier for name, ignoring case.
// Unknown names return ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
