package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) GoTo(path string) {
	n.paths = append(n.paths, path)
}

type recordingScroller struct {
	requests []ScrollRequest
}

func (s *recordingScroller) ScrollTo(req ScrollRequest) {
	s.requests = append(s.requests, req)
}

type fixedViewport int

func (v fixedViewport) InnerHeight() int {
	return int(v)
}

func TestHeroScrollArrowScrollsPastHeader(t *testing.T) {
	t.Parallel()

	for _, height := range []int{1080, 768, 70, 40} {
		scroller := &recordingScroller{}
		NewHero(DefaultHeaderHeight).ClickScrollArrow(fixedViewport(height), scroller)

		require.Len(t, scroller.requests, 1, "one scroll request per click")
		require.Equal(t, ScrollRequest{Top: height - 70, Left: 0, Smooth: true}, scroller.requests[0])
	}
}

func TestHeroScrollTargetFollowsHeaderHeight(t *testing.T) {
	t.Parallel()

	require.Equal(t, 900-96, NewHero(96).ScrollTarget(900).Top)
	require.Equal(t, DefaultHeaderHeight, NewHero(0).HeaderHeight, "non-positive height falls back to default")
}

func TestHeroCallToActionNavigatesToUpload(t *testing.T) {
	t.Parallel()

	nav := &recordingNavigator{}
	NewHero(DefaultHeaderHeight).ClickCallToAction(nav)

	require.Equal(t, []string{"/upload"}, nav.paths)
}

func TestHeroRendersDescriptionImageArrowInOrder(t *testing.T) {
	t.Parallel()

	doc := renderComponent(t, NewHero(DefaultHeaderHeight).Component())

	children := doc.Find("[data-hero-layout]").Children()
	require.Equal(t, 3, children.Length())
	require.True(t, children.Eq(0).Is("[data-hero-description]"), "description comes first")
	require.True(t, children.Eq(1).Is("img[data-hero-image]"), "image comes second")
	require.True(t, children.Eq(2).Is("[data-hero-arrow]"), "arrow comes last")

	img := children.Eq(1)
	require.Equal(t, "/app-logo.png", img.AttrOr("src", ""))
	require.Equal(t, "hero image", img.AttrOr("alt", ""))
	require.Equal(t, "450", img.AttrOr("width", ""))
	require.Equal(t, "450", img.AttrOr("height", ""))
}

func TestHeroDescriptionCopy(t *testing.T) {
	t.Parallel()

	doc := renderComponent(t, NewHero(DefaultHeaderHeight).Component())

	title := doc.Find("[data-hero-title] span")
	require.Equal(t, 2, title.Length())
	require.Equal(t, "Video Captioning", title.Eq(0).Text())
	require.Equal(t, "using AI", title.Eq(1).Text())

	cta := doc.Find("a[data-hero-cta]")
	require.Equal(t, 1, cta.Length(), "call-to-action should render once")
	require.Equal(t, UploadPath, cta.AttrOr("href", ""))
	require.Equal(t, "Try Now", strings.TrimSpace(cta.Text()))

	inline := doc.Find(`[data-hero-description] a[href="/"]`)
	require.Equal(t, "vidCaption's AI-powered", strings.TrimSpace(inline.Text()))
}

func TestHeroRenderedOffsetMatchesScrollTarget(t *testing.T) {
	t.Parallel()

	hero := NewHero(84)
	doc := renderComponent(t, hero.Component())

	arrow := doc.Find("[data-scroll-past-hero]")
	require.Equal(t, 1, arrow.Length())
	require.Equal(t, "84", arrow.AttrOr("data-header-offset", ""))
	require.Contains(t, doc.Find("[data-hero]").AttrOr("style", ""), "calc(100vh - 85px)")
	require.Equal(t, 1000-84, hero.ScrollTarget(1000).Top)
}

func renderComponent(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	require.NoError(t, err, "component must render without error")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "html must parse")
	return doc
}
