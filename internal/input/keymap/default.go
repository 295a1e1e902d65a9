package keymap

// Binding associates key specifications with an action.
type Binding struct {
	// Keys are key specifications such as "Ctrl+S" or "<S-Left>".
	Keys []string

	// Action is the command to execute.
	Action Action

	// Description provides documentation for the binding.
	Description string
}

// defaultBindings lists one entry per action.
var defaultBindings = []Binding{
	{Keys: []string{"Ctrl+Q"}, Action: ActionQuit, Description: "Quit the editor"},
	{Keys: []string{"Ctrl+S"}, Action: ActionSave, Description: "Save the file"},
	{Keys: []string{"Ctrl+X"}, Action: ActionCut, Description: "Cut the selection"},
	{Keys: []string{"Ctrl+C"}, Action: ActionCopy, Description: "Copy the selection"},
	{Keys: []string{"Ctrl+V"}, Action: ActionPaste, Description: "Paste the clipboard"},
	{Keys: []string{"Ctrl+A"}, Action: ActionSelectAll, Description: "Select the whole buffer"},
	{Keys: []string{"Delete"}, Action: ActionDelete, Description: "Delete forward"},
	{Keys: []string{"Backspace"}, Action: ActionBackspace, Description: "Delete backward"},

	{Keys: []string{"Left"}, Action: ActionMoveLeft, Description: "Move left"},
	{Keys: []string{"Right"}, Action: ActionMoveRight, Description: "Move right"},
	{Keys: []string{"Up"}, Action: ActionMoveUp, Description: "Move up"},
	{Keys: []string{"Down"}, Action: ActionMoveDown, Description: "Move down"},
	{Keys: []string{"Home"}, Action: ActionMoveLineStart, Description: "Move to line start"},
	{Keys: []string{"End"}, Action: ActionMoveLineEnd, Description: "Move to line end"},

	{Keys: []string{"Shift+Left"}, Action: ActionSelectLeft, Description: "Extend selection left"},
	{Keys: []string{"Shift+Right"}, Action: ActionSelectRight, Description: "Extend selection right"},
	{Keys: []string{"Shift+Up"}, Action: ActionSelectUp, Description: "Extend selection up"},
	{Keys: []string{"Shift+Down"}, Action: ActionSelectDown, Description: "Extend selection down"},
	{Keys: []string{"Shift+Home"}, Action: ActionSelectLineStart, Description: "Extend selection to line start"},
	{Keys: []string{"Shift+End"}, Action: ActionSelectLineEnd, Description: "Extend selection to line end"},
}

// DefaultBindings returns a copy of the built-in bindings.
func DefaultBindings() []Binding {
	out := make([]Binding, len(defaultBindings))
	for i, b := range defaultBindings {
		b.Keys = append([]string(nil), b.Keys...)
		out[i] = b
	}
	return out
}
