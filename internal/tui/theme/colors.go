package theme

import "github.com/thenoetrevino/studentdb/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Success       string
	Error         string
	Border        string
	FocusedBorder string
	Title         string
	Subtle        string
	Normal        string
	StatusBarBg   string
	StatusBarText string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Success = colors.Success
	Error = colors.Error
	Border = colors.Border
	FocusedBorder = colors.FocusedBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
