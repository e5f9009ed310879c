// Package source resolves and opens the inputs of a conversion: files named
// on the command line, glob patterns, or standard input. Compressed inputs are
// decompressed transparently.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/term"
)

// StdinName is the display name of standard input.
const StdinName = "stdin"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// compressedExts are stripped from a file name before the output extension is added.
var compressedExts = []string{".gz", ".zst"}

// Input is one document to convert.
type Input struct {
	// Name is the path as given by the user, or StdinName.
	Name string
	// Path is the file to read. Empty for standard input.
	Path string
}

// IsStdin returns true if the input is standard input.
func (in Input) IsStdin() bool {
	return in.Path == ""
}

// Title returns the default document title: the file's base name, or empty for stdin.
func (in Input) Title() string {
	if in.IsStdin() {
		return ""
	}
	return filepath.Base(in.Path)
}

// OutputName returns the file name of the document rendered from in.
// "logs/build.log.gz" becomes "build.log.html".
func (in Input) OutputName() string {
	base := StdinName
	if !in.IsStdin() {
		base = filepath.Base(in.Path)
	}
	for _, ext := range compressedExts {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".html"
}

// Stdin returns the standard input source.
func Stdin() Input {
	return Input{Name: StdinName}
}

// Expand resolves command line arguments to inputs. Arguments with glob
// metacharacters are matched with doublestar ("logs/**/*.log") and must match
// at least one file; other arguments are used verbatim.
func Expand(args []string) ([]Input, error) {
	var inputs []Input
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, Stdin())
			continue
		}

		if !hasMeta(arg) {
			inputs = append(inputs, Input{Name: arg, Path: arg})
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}

		sort.Strings(matches)
		for _, m := range matches {
			inputs = append(inputs, Input{Name: m, Path: m})
		}
	}
	return inputs, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Open opens in for reading. stdin is used for standard input and is not
// closed by the returned ReadCloser.
func Open(in Input, stdin io.Reader) (io.ReadCloser, error) {
	if in.IsStdin() {
		return Decompress(io.NopCloser(stdin))
	}

	f, err := os.Open(in.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", in.Name, err)
	}

	rc, err := Decompress(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", in.Name, err)
	}
	return rc, nil
}

// Decompress sniffs the first bytes of rc and wraps it in a gzip or zstd
// reader when they carry the format's magic number. Closing the result closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("read gzip header: %w", err)
		}
		return &readCloser{Reader: zr, close: func() error {
			_ = zr.Close()
			return rc.Close()
		}}, nil

	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("read zstd header: %w", err)
		}
		return &readCloser{Reader: zr, close: func() error {
			zr.Close()
			return rc.Close()
		}}, nil
	}

	return &readCloser{Reader: br, close: rc.Close}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// IsTerminal returns true if r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
