package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-projection/internal/model"
	"github.com/goliatone/go-projection/pkg/markup"
	pkgwrapper "github.com/goliatone/go-projection/pkg/wrapper"
)

// slotTag is the placeholder element scanned out of wrapper markup.
const slotTag = "slot"

// Scanner implements pkgwrapper.Scanner using the x/net/html tokenizer. It
// streams over the raw markup, copying literal runs verbatim and lifting
// <slot> elements into declarations, so the wrapper's authored bytes survive
// untouched outside the placeholder markers.
type Scanner struct {
	options pkgwrapper.ScannerOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgwrapper.Scanner = (*Scanner)(nil)

// New constructs a Scanner with the given options.
func New(options pkgwrapper.ScannerOptions) pkgwrapper.Scanner {
	return &Scanner{options: options}
}

// Scan decomposes the document into a WrapperModel. Slot declarations keep
// document order; duplicate selectors follow a first-wins policy unless
// StrictSlots escalates them to an error. Markup nested inside a slot element
// is retained as fallback content.
func (s *Scanner) Scan(ctx context.Context, doc markup.Document) (model.WrapperModel, error) {
	if err := ctx.Err(); err != nil {
		return model.WrapperModel{}, err
	}

	raw := doc.Raw()
	if len(bytes.TrimSpace(raw)) == 0 {
		return model.WrapperModel{}, errors.New("wrapper scanner: markup is empty")
	}

	tok := html.NewTokenizer(bytes.NewReader(raw))

	var (
		segments []model.Segment
		slots    []model.SlotDeclaration
		static   bytes.Buffer
		seen     = make(map[string]struct{})
	)

	flush := func() {
		if static.Len() == 0 {
			return
		}
		segments = append(segments, model.Segment{Markup: static.String()})
		static.Reset()
	}

	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			if err := tok.Err(); err != io.EOF {
				return model.WrapperModel{}, fmt.Errorf("wrapper scanner: tokenize markup: %w", err)
			}
			break
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			literal := append([]byte(nil), tok.Raw()...)
			name, hasAttr := tok.TagName()
			if string(name) != slotTag {
				static.Write(literal)
				continue
			}

			selector := slotSelector(tok, hasAttr)
			fallback := ""
			if tt == html.StartTagToken {
				captured, err := captureFallback(tok)
				if err != nil {
					return model.WrapperModel{}, err
				}
				fallback = captured
			}

			_, duplicate := seen[selector]
			if duplicate && s.options.StrictSlots {
				return model.WrapperModel{}, fmt.Errorf("wrapper scanner: duplicate slot selector %q", selectorLabel(selector))
			}

			flush()
			segments = append(segments, model.Segment{Slot: &model.SlotRef{
				Selector: selector,
				Fallback: fallback,
				Inert:    duplicate,
			}})
			if !duplicate {
				slots = append(slots, model.SlotDeclaration{Selector: selector, Position: len(slots)})
				seen[selector] = struct{}{}
			}

		case html.EndTagToken:
			literal := append([]byte(nil), tok.Raw()...)
			name, _ := tok.TagName()
			if string(name) == slotTag {
				// Stray close tag without a matching open; drop it so slot
				// markers never leak into output.
				continue
			}
			static.Write(literal)

		default:
			static.Write(tok.Raw())
		}
	}
	flush()

	return model.WrapperModel{
		Name:     s.wrapperName(doc),
		Source:   doc.Location(),
		Slots:    slots,
		Segments: segments,
		Metadata: cloneMetadata(s.options.Metadata),
	}, nil
}

// captureFallback consumes tokens up to the matching </slot>, accumulating the
// raw markup in between. Nested slot elements inside fallback content are kept
// verbatim; they are fallback markup, not declarations.
func captureFallback(tok *html.Tokenizer) (string, error) {
	var (
		fallback bytes.Buffer
		depth    = 1
	)

	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			if err := tok.Err(); err != io.EOF {
				return "", fmt.Errorf("wrapper scanner: tokenize slot content: %w", err)
			}
			return "", errors.New("wrapper scanner: unterminated slot element")
		}

		literal := append([]byte(nil), tok.Raw()...)

		switch tt {
		case html.StartTagToken:
			name, _ := tok.TagName()
			if string(name) == slotTag {
				depth++
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			if string(name) == slotTag {
				depth--
				if depth == 0 {
					return fallback.String(), nil
				}
			}
		}

		fallback.Write(literal)
	}
}

// slotSelector reads the name attribute off the current slot tag. A missing or
// blank name declares the default slot.
func slotSelector(tok *html.Tokenizer, hasAttr bool) string {
	for hasAttr {
		key, value, more := tok.TagAttr()
		if string(key) == "name" {
			return strings.TrimSpace(string(value))
		}
		hasAttr = more
	}
	return ""
}

func (s *Scanner) wrapperName(doc markup.Document) string {
	if name := strings.TrimSpace(s.options.Name); name != "" {
		return name
	}
	location := doc.Location()
	if location == "" {
		return "wrapper"
	}
	base := filepath.Base(location)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "wrapper"
	}
	return base
}

func selectorLabel(selector string) string {
	if selector == "" {
		return "(default)"
	}
	return selector
}

func cloneMetadata(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
