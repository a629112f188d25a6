package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"

	"mapca-proposal/logs"
)

var ErrEmptyDocument = errors.New("documento sem texto extraível")

var (
	controlRe   = regexp.MustCompile(`[\x00-\x08\x0B-\x0C\x0E-\x1F\x7F]`)
	blanksRe    = regexp.MustCompile(`[ \t\r\f\v]+`)
	paragraphRe = regexp.MustCompile(`\n{3,}`)
)

// TextParser turns an uploaded document into plain diagnostic text.
type TextParser struct {
	p parser.Parser
}

// NewPDF returns a TextParser backed by the eino PDF parser.
func NewPDF(ctx context.Context) (*TextParser, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("new pdf parser: %w", err)
	}
	return New(p), nil
}

func New(p parser.Parser) *TextParser {
	return &TextParser{p: p}
}

// Text parses r and returns its cleaned content. name is recorded as the document URI.
func (t *TextParser) Text(ctx context.Context, r io.Reader, name string) (string, error) {
	start := time.Now()
	docs, err := t.p.Parse(ctx, r, parser.WithURI(name))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}
	logs.L().Debugf(">>> [Parser] %s: %d documento(s) em %v", name, len(docs), time.Since(start))

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if c := Clean(doc.Content); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyDocument
	}
	return strings.Join(parts, "\n\n"), nil
}

// Clean drops invalid UTF-8 and control characters and collapses runs of
// blanks, keeping paragraph breaks. PDF text often carries both.
func Clean(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = controlRe.ReplaceAllString(text, "")
	text = blanksRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	text = paragraphRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
