package core

// Color is the foreground color of a screen cell.
// The zero value leaves the terminal's default color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ansiCodes maps colors to ANSI 256-color codes.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorYellow:        "3",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// Code returns the ANSI 256-color code, or "" for the default color and
// unknown values.
func (c Color) Code() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Colors lists every defined color, default first.
func Colors() []Color {
	out := make([]Color, len(ansiCodes))
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
