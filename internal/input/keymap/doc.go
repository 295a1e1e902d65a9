// Package keymap maps key events to editor actions.
//
// The default bindings follow common desktop conventions: Ctrl+Q quits,
// Ctrl+S saves, Ctrl+X/C/V use the clipboard and Ctrl+A selects the whole
// buffer. Arrow keys, Home and End move the cursor; holding Shift extends
// the selection.
//
// Bindings can be replaced per action from the [keys] table of the
// configuration file:
//
//	[keys]
//	save = "Ctrl+W"
//	quit = "<C-x>"
//	cut  = "none"
//
// A value of "none" (or an empty string) unbinds the action. Several keys
// can be given for one action by separating them with commas.
package keymap
