package keymap

// Action names an editor command a key can be bound to.
type Action string

// Editor actions.
const (
	ActionQuit      Action = "quit"
	ActionSave      Action = "save"
	ActionCut       Action = "cut"
	ActionCopy      Action = "copy"
	ActionPaste     Action = "paste"
	ActionSelectAll Action = "selectAll"
	ActionDelete    Action = "delete"
	ActionBackspace Action = "backspace"

	ActionMoveLeft      Action = "moveLeft"
	ActionMoveRight     Action = "moveRight"
	ActionMoveUp        Action = "moveUp"
	ActionMoveDown      Action = "moveDown"
	ActionMoveLineStart Action = "lineStart"
	ActionMoveLineEnd   Action = "lineEnd"

	ActionSelectLeft      Action = "selectLeft"
	ActionSelectRight     Action = "selectRight"
	ActionSelectUp        Action = "selectUp"
	ActionSelectDown      Action = "selectDown"
	ActionSelectLineStart Action = "selectLineStart"
	ActionSelectLineEnd   Action = "selectLineEnd"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, b := range defaultBindings {
		if b.Action == a {
			return true
		}
	}
	return false
}
