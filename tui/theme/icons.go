package theme

import "os"

// Nerd Font icons
const (
	nerdIconFolderOpen = "" // fa-folder_open (U+F07C)
	nerdIconFolderPlus = "" // fa-folder_plus (U+F65E)
	nerdIconBullet     = "" // oct-dot_fill (U+F444)
	nerdIconSearch     = "" // fa-search (U+F002)
	nerdIconWatch      = "" // fa-eye (U+F06E)
	nerdIconError      = "" // cod-error (U+EA87)
)

// ASCII fallbacks
const (
	asciiIconFolderOpen = "▼"
	asciiIconFolderPlus = "▶"
	asciiIconBullet     = "•"
	asciiIconSearch     = "/"
	asciiIconWatch      = "~"
	asciiIconError      = "✗"
)

// Public icon variables, populated at init for the detected icon mode.
var (
	IconFolderOpen string
	IconFolderPlus string
	IconBullet     string
	IconSearch     string
	IconWatch      string
	IconError      string
)

func init() {
	UseNerdFonts(os.Getenv("JSONTREE_ASCII") == "")
}

// UseNerdFonts switches between Nerd Font glyphs and plain ASCII fallbacks.
// Set JSONTREE_ASCII to any value to start in ASCII mode; configuration can
// override after load.
func UseNerdFonts(enabled bool) {
	if enabled {
		IconFolderOpen = nerdIconFolderOpen
		IconFolderPlus = nerdIconFolderPlus
		IconBullet = nerdIconBullet
		IconSearch = nerdIconSearch
		IconWatch = nerdIconWatch
		IconError = nerdIconError
		return
	}
	IconFolderOpen = asciiIconFolderOpen
	IconFolderPlus = asciiIconFolderPlus
	IconBullet = asciiIconBullet
	IconSearch = asciiIconSearch
	IconWatch = asciiIconWatch
	IconError = asciiIconError
}
