package input

// Action names for commands bound to key chords.
const (
	ActionSave         = "file.save"         // Ctrl+S - save document
	ActionPaste        = "editor.paste"      // Ctrl+V - paste from clipboard
	ActionInvertColors = "view.invertColors" // Ctrl+I - toggle display colors
	ActionFontIncrease = "view.fontIncrease" // Ctrl+= - grow font
	ActionFontDecrease = "view.fontDecrease" // Ctrl+- - shrink font
)

// Action names for plain editing keys.
const (
	ActionInsertText     = "editor.insertText"
	ActionInsertTab      = "editor.insertTab"
	ActionDeleteBackward = "editor.deleteBackward"
	ActionSplitLine      = "editor.splitLine"

	ActionMoveLeft  = "cursor.moveLeft"
	ActionMoveRight = "cursor.moveRight"
	ActionMoveUp    = "cursor.moveUp"
	ActionMoveDown  = "cursor.moveDown"
)

// Commands lists the actions that can be bound in a Keymap.
var Commands = []string{
	ActionSave,
	ActionPaste,
	ActionInvertColors,
	ActionFontIncrease,
	ActionFontDecrease,
}

// IsCommand returns true if name is a bindable command.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}
