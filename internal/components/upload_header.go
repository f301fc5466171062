package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func UploadHeader() g.Node {
	return Div(
		Class("flex flex-col gap-1 mb-8"),
		g.Attr("data-upload-header", ""),
		H1(
			Class("font-bold text-[24px]"),
			g.Text("Upload Video "),
			Span(Class("text-tiktok-red"), g.Text("(VidCaption)")),
		),
		P(
			Class("text-tiktok-gray"),
			g.Text("Create subtitles for your videos with VidCaption's AI-powered caption generation."),
		),
	)
}
