// ABOUTME: This file renders the fallback card image from the coupon title
// ABOUTME: Prefers the configured TTF, falls back to the builtin bitmap face
package artifact

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	cardWidth    = 800
	cardHeight   = 400
	cardFontSize = 40
	cardMargin   = 24
)

// render draws the title onto a blank card and saves it into the artifact
// slot. Used when no usable image could be downloaded.
func (p *Producer) render(title string) error {
	dc := gg.NewContext(cardWidth, cardHeight)

	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	if err := dc.LoadFontFace(p.fontPath, cardFontSize); err != nil {
		p.logger.Debug("preferred font unavailable, using builtin face",
			"font", p.fontPath, "error", err)
		dc.SetFontFace(basicfont.Face7x13)
	}

	dc.DrawStringWrapped(title, cardMargin, cardMargin, 0, 0,
		cardWidth-2*cardMargin, 1.5, gg.AlignLeft)

	return dc.SavePNG(p.path)
}
