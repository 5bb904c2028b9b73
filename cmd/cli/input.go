package main

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readExpressions reads one expression per line from path. Blank lines and
// lines starting with # are skipped.
func readExpressions(path string) ([]string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read file")
	}

	text, err := decodeText(b)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to decode %s", path)
	}

	return splitExpressions(text), nil
}

// decodeText converts b to UTF-8. A BOM selects the encoding; without one,
// zero bytes in alternating positions mark UTF-16.
func decodeText(b []byte) (string, error) {
	var dec transform.Transformer
	switch {
	case looksUTF16(b, 1):
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case looksUTF16(b, 0):
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	default:
		dec = unicode.BOMOverride(encoding.Nop.NewDecoder())
	}

	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func looksUTF16(b []byte, offset int) bool {
	if len(b) < 8 {
		return false
	}
	for i := offset; i < 8; i += 2 {
		if b[i] != 0 {
			return false
		}
	}
	return true
}

func splitExpressions(text string) []string {
	var expressions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	return expressions
}
