package components

const (
	RootPath   = "/"
	UploadPath = "/upload"

	// DefaultHeaderHeight is the rendered top bar height in pixels. The hero
	// scroll offset and the top bar height are both derived from it.
	DefaultHeaderHeight = 70
)

// Navigator performs client-side navigation to an application path.
type Navigator interface {
	GoTo(path string)
}

// ScrollRequest is a vertical/horizontal offset the host should scroll to.
type ScrollRequest struct {
	Top    int
	Left   int
	Smooth bool
}

// Scroller is the host environment's scroll API.
type Scroller interface {
	ScrollTo(req ScrollRequest)
}

// Viewport reads host window dimensions at interaction time.
type Viewport interface {
	InnerHeight() int
}
