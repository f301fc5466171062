package components

import (
	"fmt"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const defaultTitle = "vidCaption - Video Captioning using AI"

// scrollScript forwards clicks on the hero arrow to window.scrollTo, reading
// the header offset rendered next to the arrow.
const scrollScript = `document.addEventListener("click", function (event) {
  var arrow = event.target.closest("[data-scroll-past-hero]");
  if (!arrow) { return; }
  var offset = Number(arrow.getAttribute("data-header-offset")) || 0;
  window.scrollTo({ top: window.innerHeight - offset, left: 0, behavior: "smooth" });
});`

type PageConfig struct {
	Title        string
	Description  string
	HeaderHeight int
}

func Page(config PageConfig, content ...g.Node) templ.Component {
	return Templ(Layout(config, content...))
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = "Add captions to your videos with vidCaption's AI-powered caption generation."
	}
	if config.HeaderHeight <= 0 {
		config.HeaderHeight = DefaultHeaderHeight
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Link(Rel("icon"), Href("/static/favicon.ico")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://unpkg.com/htmx.org@1.9.10")),
			),
			Body(
				Class("min-h-screen"),
				topbar(config.HeaderHeight),
				g.Group(content),
				Script(g.Raw(scrollScript)),
			),
		),
	)
}

func topbar(height int) g.Node {
	return Nav(
		Class("flex items-center px-8 sm:px-12 md:px-16 lg:px-24 border-b"),
		g.Attr("style", fmt.Sprintf("height: %dpx", height)),
		g.Attr("data-topbar", ""),
		BrandMark{}.Node(),
	)
}
