/*
File    : ego/builtin/termgfx/colors.go
*/
package termgfx

import "github.com/fatih/color"

// byName maps the raylib color names the source's scripts pass to
// clr_bg/draw_rec/draw_text/draw_circle (RAYWHITE, BLACK, RED, ...) to
// the closest terminal foreground attribute fatih/color offers.
var byName = map[string]color.Attribute{
	"black":    color.FgBlack,
	"white":    color.FgWhite,
	"raywhite": color.FgWhite,
	"red":      color.FgRed,
	"green":    color.FgGreen,
	"blue":     color.FgBlue,
	"yellow":   color.FgYellow,
	"magenta":  color.FgMagenta,
	"pink":     color.FgMagenta,
	"cyan":     color.FgCyan,
	"gray":     color.FgHiBlack,
	"darkgray": color.FgHiBlack,
	"lightgray": color.FgHiWhite,
}

// ColorByName resolves a color name case-insensitively, defaulting to
// white for anything unrecognized rather than failing the draw call —
// an unknown color name should not stop a frame from rendering.
func ColorByName(name string) color.Attribute {
	if c, ok := byName[lower(name)]; ok {
		return c
	}
	return color.FgWhite
}

func lower(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}
