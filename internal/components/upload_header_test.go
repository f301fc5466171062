package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadHeaderRendersHeadingAndCaption(t *testing.T) {
	t.Parallel()

	doc := renderComponent(t, Templ(UploadHeader()))

	heading := doc.Find("[data-upload-header] h1")
	require.Equal(t, 1, heading.Length())
	require.Contains(t, heading.Text(), "Upload Video")
	require.Equal(t, "(VidCaption)", heading.Find("span").Text())

	caption := doc.Find("[data-upload-header] p")
	require.Contains(t, caption.Text(), "AI-powered caption generation")
}

func TestUploadPagePlacesHeaderBeforeForm(t *testing.T) {
	t.Parallel()

	doc := renderComponent(t, Templ(UploadPage(true)))

	require.Equal(t, 1, doc.Find("[data-upload-header] + form[data-upload-form]").Length(), "form follows the header")

	form := doc.Find("form[data-upload-form]")
	require.Equal(t, UploadPath, form.AttrOr("action", ""))
	require.Equal(t, "multipart/form-data", form.AttrOr("enctype", ""))
	require.Equal(t, 1, form.Find(`input[type="file"][name="video"]`).Length())

	soft := form.Find(`input[name="soft"]`)
	_, checked := soft.Attr("checked")
	require.True(t, checked, "soft subtitle default should be reflected")
	require.True(t, strings.Contains(form.Text(), "Generate captions"))
}

func TestUploadFormSoftUnchecked(t *testing.T) {
	t.Parallel()

	doc := renderComponent(t, Templ(UploadForm(false)))

	_, checked := doc.Find(`input[name="soft"]`).Attr("checked")
	require.False(t, checked)
}
