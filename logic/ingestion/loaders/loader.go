package loaders

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/loader/file"
	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document"
	einoparser "github.com/cloudwego/eino/components/document/parser"

	"mapca-proposal/logic/ingestion/parser"
)

// NewFileLoader loads local diagnosis files: .pdf through the PDF parser,
// anything else as plain text.
func NewFileLoader(ctx context.Context) (document.Loader, error) {
	pdfParser, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("new pdf parser: %w", err)
	}
	ext, err := einoparser.NewExtParser(ctx, &einoparser.ExtParserConfig{
		Parsers:        map[string]einoparser.Parser{".pdf": pdfParser},
		FallbackParser: einoparser.TextParser{},
	})
	if err != nil {
		return nil, fmt.Errorf("new ext parser: %w", err)
	}
	return file.NewFileLoader(ctx, &file.FileLoaderConfig{
		UseNameAsID: true,
		Parser:      ext,
	})
}

// LoadText loads path and returns its cleaned text.
func LoadText(ctx context.Context, l document.Loader, path string) (string, error) {
	docs, err := l.Load(ctx, document.Source{URI: path})
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if c := parser.Clean(doc.Content); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return "", parser.ErrEmptyDocument
	}
	return strings.Join(parts, "\n\n"), nil
}
