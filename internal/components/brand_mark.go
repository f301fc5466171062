package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const BrandMarkSrc = "/assets/vidcaption-logo-text.svg"

// BrandMark is the clickable logo in the top bar.
type BrandMark struct{}

func (BrandMark) Click(nav Navigator) {
	nav.GoTo(RootPath)
}

func (b BrandMark) Component() templ.Component {
	return Templ(b.Node())
}

func (BrandMark) Node() g.Node {
	return A(
		Href(RootPath),
		Class("relative block w-[92px] sm:w-[130px] h-[38px] cursor-pointer"),
		g.Attr("data-brand-mark", ""),
		Img(
			Src(BrandMarkSrc),
			Alt("VidCaption Logo"),
			Class("absolute inset-0 w-full h-full object-contain"),
		),
	)
}
