package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconWarning  = "\uf071" // warning
	IconDatabase = "\uf1c0" // database
	IconTrash    = "\uf1f8" // trash
	IconPalette  = "\uf53f" // palette
	IconColumns  = "\uf0db" // columns
	IconWindow   = "\uf2d0" // window
	IconRestore  = "\uf0e2" // undo
)
