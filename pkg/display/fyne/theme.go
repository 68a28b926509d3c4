package fyne

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
)

var (
	_ fyne.Theme = defaultTheme{}
)

// defaultTheme is the stock fyne theme, with the background taken
// from the darkest shade of the green palette.
type defaultTheme struct{}

func (defaultTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		c := palette.Get(palette.Green).Colors[3]
		return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (defaultTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (defaultTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (defaultTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
