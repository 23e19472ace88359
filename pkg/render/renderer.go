package render

import (
	"context"

	"github.com/goliatone/go-projection/pkg/model"
)

// Renderer composes a wrapper with caller-supplied content into a byte
// representation (HTML, plain text, etc.). Binding happens inside Render via
// the pure binder, so every call recomputes the slot mapping from scratch and
// repeated renders stay idempotent.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, wrapper model.WrapperModel, blocks []model.ContentBlock, options RenderOptions) ([]byte, error)
}
