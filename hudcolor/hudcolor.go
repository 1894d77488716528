// Package hudcolor provides the static HUD color registry that named
// color directives (~COLOR_<NAME>~) resolve against.
package hudcolor

import "fmt"

// RGBA is a color value with 8-bit channels.
type RGBA struct {
	R, G, B, A uint8
}

// CSS returns the rgba(r,g,b,a) form used by the HTML preview.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// Default is the light grey every string starts in before any color
// directive takes effect.
var Default = RGBA{R: 205, G: 205, B: 205, A: 255}

// Registry contains the known HUD color names. Unknown names are a
// structural error at validation time; the style state machine falls back
// to Default instead of failing.
var Registry = map[string]RGBA{
	"PURE_WHITE":   {255, 255, 255, 255},
	"WHITE":        {240, 240, 240, 255},
	"BLACK":        {0, 0, 0, 255},
	"GREY":         {155, 155, 155, 255},
	"GREYLIGHT":    {205, 205, 205, 255},
	"GREYDARK":     {77, 77, 77, 255},
	"RED":          {224, 50, 50, 255},
	"REDLIGHT":     {240, 153, 153, 255},
	"REDDARK":      {112, 25, 25, 255},
	"BLUE":         {93, 182, 229, 255},
	"BLUELIGHT":    {174, 219, 242, 255},
	"BLUEDARK":     {47, 92, 115, 255},
	"YELLOW":       {240, 200, 80, 255},
	"YELLOWLIGHT":  {254, 235, 169, 255},
	"YELLOWDARK":   {126, 107, 41, 255},
	"ORANGE":       {255, 133, 85, 255},
	"ORANGELIGHT":  {255, 194, 170, 255},
	"ORANGEDARK":   {127, 66, 42, 255},
	"GREEN":        {114, 204, 114, 255},
	"GREENLIGHT":   {185, 230, 185, 255},
	"GREENDARK":    {57, 102, 57, 255},
	"PURPLE":       {132, 102, 226, 255},
	"PURPLELIGHT":  {192, 179, 239, 255},
	"PURPLEDARK":   {67, 57, 111, 255},
	"PINK":         {203, 54, 148, 255},
	"GOLD":         {226, 184, 43, 255},
	"NET_PLAYER1":  {194, 80, 80, 255},
	"NET_PLAYER2":  {156, 110, 175, 255},
	"NET_PLAYER3":  {255, 123, 196, 255},
	"NET_PLAYER4":  {247, 159, 123, 255},
	"FREEMODE":     {45, 110, 185, 255},
	"MENU_BLUE":    {140, 140, 140, 255},
	"HUD_COLOUR_3": {93, 182, 229, 255},
}

// Resolve looks up a HUD color by name.
func Resolve(name string) (RGBA, bool) {
	c, ok := Registry[name]
	return c, ok
}
