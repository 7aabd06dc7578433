package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrIntroConversion indicates the intro Markdown could not be rendered.
var ErrIntroConversion = errors.New("intro conversion failed")

// introHighlightStyle is the chroma style for fenced code in the intro.
const introHighlightStyle = "github"

// IntroRenderer renders the optional report intro from Markdown to an
// HTML fragment.
type IntroRenderer interface {
	RenderIntro(ctx context.Context, markdown string) (string, error)
}

// GoldmarkIntro renders the intro with goldmark (pure Go).
type GoldmarkIntro struct {
	md goldmark.Markdown
}

// NewGoldmarkIntro creates a GoldmarkIntro with GFM extensions and inline
// syntax highlighting. The report is a single self-contained file, so
// highlighting uses inline styles rather than CSS classes.
func NewGoldmarkIntro() *GoldmarkIntro {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(introHighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // <hr />, matching the report separators
			// Raw HTML in the intro is dropped: WithUnsafe is not set.
		),
	)
	return &GoldmarkIntro{md: md}
}

// RenderIntro converts markdown to an HTML fragment. Blank input renders
// as "". Goldmark has no context support, so conversion runs in a
// goroutine and the caller returns early on cancellation.
func (g *GoldmarkIntro) RenderIntro(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrIntroConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
