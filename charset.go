package ansihtml

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const utf8Charset = "utf-8"

// CanonicalCharset returns the WHATWG name of the character encoding called name.
func CanonicalCharset(name string) (string, error) {
	canonical, _, err := lookupCharset(name)
	return canonical, err
}

func lookupCharset(name string) (string, encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return "", nil, fmt.Errorf("unknown character encoding %q: %w", name, err)
	}

	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return "", nil, fmt.Errorf("unnamed character encoding %q: %w", name, err)
	}
	return canonical, enc, nil
}

// transcoder returns the encoding that input and output must be converted
// from and to, or nil if the document is written as-is.
func transcoder(cfg Config) encoding.Encoding {
	if cfg.Encoding == "" || cfg.LegacyCodePage {
		return nil
	}

	canonical, enc, err := lookupCharset(cfg.Encoding)
	if err != nil || canonical == utf8Charset {
		return nil
	}
	return enc
}
