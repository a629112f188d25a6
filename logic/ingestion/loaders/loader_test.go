package loaders

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapca-proposal/logic/ingestion/parser"
)

func TestLoadText_PlainFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diagnostico.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Padaria   Pão Dourado\n\n\n\nSem controle de caixa.  "), 0o644))

	l, err := NewFileLoader(ctx)
	require.NoError(t, err)
	got, err := LoadText(ctx, l, path)
	require.NoError(t, err)
	assert.Equal(t, "Padaria Pão Dourado\n\nSem controle de caixa.", got)
}

func TestLoadText_Empty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vazio.txt")
	require.NoError(t, os.WriteFile(path, []byte(" \n "), 0o644))

	l, err := NewFileLoader(ctx)
	require.NoError(t, err)
	_, err = LoadText(ctx, l, path)
	assert.ErrorIs(t, err, parser.ErrEmptyDocument)
}

func TestLoadText_Missing(t *testing.T) {
	ctx := context.Background()
	l, err := NewFileLoader(ctx)
	require.NoError(t, err)
	_, err = LoadText(ctx, l, filepath.Join(t.TempDir(), "nada.txt"))
	assert.Error(t, err)
}
