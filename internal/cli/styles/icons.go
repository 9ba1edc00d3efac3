package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconTrash    = "" // trash
	IconDatabase = "" // database
	IconConfig   = "" // config
	IconLayout   = "" // columns
	IconTab      = "" // window
	IconSidebar  = "" // bars
	IconDot      = "●"
	IconCircle   = "○"
)
