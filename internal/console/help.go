package console

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// HelpRenderer turns markdown help into terminal output
type HelpRenderer struct {
	opts []glamour.TermRendererOption

	once     sync.Once
	renderer *glamour.TermRenderer
	err      error
}

// NewHelpRenderer creates a renderer wrapping at width. With no style
// options the style is detected from the terminal.
func NewHelpRenderer(width int, opts ...glamour.TermRendererOption) *HelpRenderer {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	opts = append(opts, glamour.WithWordWrap(width))
	return &HelpRenderer{opts: opts}
}

// Render returns the rendered markdown, or the markdown itself if rendering fails
func (h *HelpRenderer) Render(markdown string) string {
	h.once.Do(func() {
		h.renderer, h.err = glamour.NewTermRenderer(h.opts...)
	})
	if h.err != nil {
		return markdown
	}

	out, err := h.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(out)
}
