package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	VideoField = "video"
	SoftField  = "soft"
)

func UploadForm(softDefault bool) g.Node {
	return Form(
		Action(UploadPath),
		Method("post"),
		EncType("multipart/form-data"),
		Class("flex flex-col gap-4"),
		g.Attr("data-upload-form", ""),
		Input(
			Type("file"),
			Name(VideoField),
			ID(VideoField),
			Accept("video/mp4"),
			Required(),
		),
		Label(
			Class("flex items-center gap-2"),
			Input(
				Type("checkbox"),
				Name(SoftField),
				Value("on"),
				g.If(softDefault, Checked()),
			),
			g.Text("Add subtitles as a selectable track instead of burning them in"),
		),
		Button(Type("submit"), Class("btn w-max"), g.Text("Generate captions")),
	)
}

// UploadPage is the upload header followed by the form.
func UploadPage(softDefault bool) g.Node {
	return Div(
		Class("flex flex-col items-center px-8 py-12"),
		Div(
			Class("w-full max-w-[640px]"),
			UploadHeader(),
			UploadForm(softDefault),
		),
	)
}
