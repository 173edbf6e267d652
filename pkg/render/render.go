package render

import "context"

// FormatSVG is the artifact format produced by all renderers in this
// package.
const FormatSVG = "svg"

// Renderer converts diagram markup into SVG bytes.
type Renderer interface {
	Render(ctx context.Context, markup string) ([]byte, error)
}
