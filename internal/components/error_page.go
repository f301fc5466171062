package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ErrorMessage(code int, title string, msg string) g.Node {
	return Div(
		Class("flex flex-col items-center gap-2 px-8 py-24 text-center"),
		g.Attr("data-error", strconv.Itoa(code)),
		P(Class("font-semibold text-vidcaption-red"), g.Text(strconv.Itoa(code))),
		H1(Class("font-black text-[36px]"), g.Text(title)),
		P(g.Text(msg)),
		A(Href(RootPath), Class("underline"), g.Text("Go back home")),
	)
}
