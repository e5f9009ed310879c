package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.log"), []byte("a"))
	writeFile(t, filepath.Join(dir, "nested", "b.log"), []byte("b"))
	writeFile(t, filepath.Join(dir, "nested", "c.txt"), []byte("c"))

	t.Run("verbatim", func(t *testing.T) {
		inputs, err := Expand([]string{"missing.log"})
		require.NoError(t, err)
		assert.Equal(t, []Input{{Name: "missing.log", Path: "missing.log"}}, inputs)
	})

	t.Run("dash is stdin", func(t *testing.T) {
		inputs, err := Expand([]string{"-"})
		require.NoError(t, err)
		require.Len(t, inputs, 1)
		assert.True(t, inputs[0].IsStdin())
	})

	t.Run("recursive glob", func(t *testing.T) {
		inputs, err := Expand([]string{filepath.Join(dir, "**", "*.log")})
		require.NoError(t, err)
		require.Len(t, inputs, 2)
		assert.Equal(t, filepath.Join(dir, "a.log"), inputs[0].Path)
		assert.Equal(t, filepath.Join(dir, "nested", "b.log"), inputs[1].Path)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := Expand([]string{filepath.Join(dir, "*.md")})
		assert.ErrorContains(t, err, "no files match")
	})
}

func TestInputNames(t *testing.T) {
	tests := []struct {
		in     Input
		title  string
		output string
	}{
		{Input{Name: "logs/build.log", Path: "logs/build.log"}, "build.log", "build.log.html"},
		{Input{Name: "build.log.gz", Path: "build.log.gz"}, "build.log.gz", "build.log.html"},
		{Input{Name: "art.ans.zst", Path: "art.ans.zst"}, "art.ans.zst", "art.ans.html"},
		{Stdin(), "", "stdin.html"},
	}

	for _, tt := range tests {
		t.Run(tt.in.Name, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.in.Title())
			assert.Equal(t, tt.output, tt.in.OutputName())
		})
	}
}

func TestOpenDecompresses(t *testing.T) {
	const text = "\x1b[31mred\x1b[0m\n"
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var zs bytes.Buffer
	enc, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = enc.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	files := map[string][]byte{
		"plain.log":    []byte(text),
		"build.log.gz": gz.Bytes(),
		"art.ans.zst":  zs.Bytes(),
	}

	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeFile(t, path, data)

			rc, err := Open(Input{Name: name, Path: path}, nil)
			require.NoError(t, err)
			defer rc.Close()

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, text, string(got))
		})
	}
}

func TestOpenStdin(t *testing.T) {
	rc, err := Open(Stdin(), strings.NewReader("hello"))
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	assert.NoError(t, rc.Close())
}

func TestOpenShortInput(t *testing.T) {
	rc, err := Open(Stdin(), strings.NewReader("\x1f"))
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "\x1f", string(got))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(Input{Name: "nope.log", Path: filepath.Join(t.TempDir(), "nope.log")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("x")))

	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
