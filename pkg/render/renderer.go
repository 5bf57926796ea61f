package render

import (
	"context"

	"github.com/goliatone/go-noticegen/pkg/notice"
)

// Renderer converts a notice into a byte representation (HTML for the
// built-in renderer; alternative registrations can target other formats).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, n notice.Notice, options RenderOptions) ([]byte, error)
}
