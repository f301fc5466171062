package components

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	HeroImageSrc  = "/app-logo.png"
	HeroImageSize = 450
)

// Hero is the landing page section: description, decorative image and a
// scroll arrow that moves the viewport past the section.
type Hero struct {
	HeaderHeight int
}

func NewHero(headerHeight int) Hero {
	if headerHeight <= 0 {
		headerHeight = DefaultHeaderHeight
	}
	return Hero{HeaderHeight: headerHeight}
}

// ScrollTarget is the offset the arrow scrolls to for a viewport of the given
// height. Negative results are left to the host to clamp.
func (h Hero) ScrollTarget(viewportHeight int) ScrollRequest {
	return ScrollRequest{Top: viewportHeight - h.HeaderHeight, Left: 0, Smooth: true}
}

func (h Hero) ClickScrollArrow(viewport Viewport, scroller Scroller) {
	scroller.ScrollTo(h.ScrollTarget(viewport.InnerHeight()))
}

func (h Hero) ClickCallToAction(nav Navigator) {
	nav.GoTo(UploadPath)
}

func (h Hero) Component() templ.Component {
	return Templ(h.Node())
}

func (h Hero) Node() g.Node {
	return Section(
		Class("flex justify-center items-center"),
		g.Attr("style", fmt.Sprintf("height: calc(100vh - %dpx)", h.HeaderHeight+1)),
		g.Attr("data-hero", ""),
		Div(
			Class("flex gap-8 justify-between items-center px-8 sm:px-12 md:px-16 lg:px-24 transition-all"),
			g.Attr("data-hero-layout", ""),
			heroDescription(),
			heroImage(),
			h.navArrow(),
		),
	)
}

func heroDescription() g.Node {
	return Div(
		Class("flex flex-col"),
		g.Attr("data-hero-description", ""),
		Div(
			Class("flex items-center gap-2"),
			Hr(Class("w-[40px] sm:w-[75px] border-blue border-[2px]")),
			Span(
				Class("font-semibold text-[16px] sm:text-[20px]"),
				Span(Class("green"), g.Text("vidCaption")),
			),
		),
		Div(
			Class("flex flex-col font-black text-[36px] sm:text-[42px] lg:text-[48px] mt-4"),
			g.Attr("data-hero-title", ""),
			Span(Class("text-vidcaption-red"), g.Text("Video Captioning")),
			Span(Class("-translate-y-0 sm:-translate-y-2"), g.Text("using AI")),
		),
		Div(
			Class("flex flex-col gap-6 mt-4"),
			Div(
				Class("text-[18px] sm:text-[20px]"),
				g.Text("Add captions to your videos with "),
				A(
					Href(RootPath),
					Class("font-bold text-vidcaption-blue underline underline-offset-2 cursor-pointer"),
					g.Text("vidCaption's AI-powered"),
				),
				g.Text(" caption generation."),
			),
			A(
				Href(UploadPath),
				Class("btn w-max"),
				g.Attr("data-hero-cta", ""),
				g.Text("Try Now"),
			),
		),
	)
}

func heroImage() g.Node {
	size := strconv.Itoa(HeroImageSize)
	return Img(
		Src(HeroImageSrc),
		Alt("hero image"),
		Width(size),
		Height(size),
		Class("hidden lg:block"),
		g.Attr("data-hero-image", ""),
	)
}

func (h Hero) navArrow() g.Node {
	return Div(
		Class("absolute bottom-12 left-1/2 -translate-x-1/2"),
		g.Attr("data-hero-arrow", ""),
		Button(
			Type("button"),
			Class("w-6 h-6 text-vidcaption-primary cursor-pointer animate-pulse hover:animate-none hover:scale-125 transition-all"),
			g.Attr("aria-label", "Scroll down"),
			g.Attr("data-scroll-past-hero", ""),
			g.Attr("data-header-offset", strconv.Itoa(h.HeaderHeight)),
			arrowDownIcon(),
		),
	)
}

func arrowDownIcon() g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 384 512"),
		g.Attr("fill", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", "M169.4 470.6c12.5 12.5 32.8 12.5 45.3 0l160-160c12.5-12.5 12.5-32.8 0-45.3s-32.8-12.5-45.3 0L224 370.8 224 64c0-17.7-14.3-32-32-32s-32 14.3-32 32l0 306.7L54.6 265.4c-12.5-12.5-32.8-12.5-45.3 0s-12.5 32.8 0 45.3l160 160z")),
	)
}
