// Package key provides key event types and key specification parsing.
//
// # Key Specifications
//
// Key specifications can be written in two formats:
//
//   - With modifiers: "Ctrl+S", "Alt+Left", "Ctrl+Shift+Home"
//   - Vim-style: "<C-s>", "<S-Left>", "<CR>", "<Esc>"
//
// A bare key name ("Enter", "Delete") or a single character ("x") is also
// accepted.
package key
