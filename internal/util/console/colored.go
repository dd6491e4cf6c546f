package console

import (
	"strings"

	"github.com/gookit/color"
	"go.minekube.com/common/minecraft/component/codec/legacy"
)

// AnsiFromLegacy converts legacy text with '§' formatting codes
// to text with ANSI escape codes.
//
// Like in game, a color code resets all previous formatting while
// format codes such as bold add to it.
func AnsiFromLegacy(s string) string {
	b := new(strings.Builder)
	run := new(strings.Builder) // text of the current style
	var code bool
	style := plain
	flush := func() {
		if run.Len() != 0 {
			b.WriteString(style(run.String()))
			run.Reset()
		}
	}
	for _, r := range s {
		if r == legacy.DefaultChar && !code {
			code = true
			continue
		}
		if code {
			code = false
			flush()
			switch {
			case r == 'r':
				style = plain
			case isColorCode(r):
				style = wrap(plain, convert(r))
			default:
				style = wrap(style, convert(r))
			}
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

func plain(s string) string { return s }

func wrap(inner func(string) string, c color.Color) func(string) string {
	return func(s string) string { return inner(c.Sprint(s)) }
}

func isColorCode(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

func convert(r rune) color.Color {
	switch r {
	case 'a':
		return color.LightGreen
	case 'b':
		return color.LightBlue
	case 'c':
		return color.LightRed
	case 'd':
		return color.LightMagenta
	case 'e':
		return color.LightYellow
	case 'f':
		return color.LightWhite
	case 'k':
		return color.OpConcealed
	case 'l':
		return color.OpBold
	case 'm':
		return color.OpStrikethrough
	case 'n':
		return color.OpUnderscore
	case 'o':
		return color.OpItalic
	case '0':
		return color.Black
	case '1':
		return color.Blue
	case '2':
		return color.Green
	case '3':
		return color.Cyan
	case '4':
		return color.Red
	case '5':
		return color.Magenta
	case '6':
		return color.Yellow
	case '7':
		return color.White
	case '8':
		return color.Gray
	case '9':
		return color.LightCyan
	default:
		return color.OpReset
	}
}
