// Package encoding normalizes imported statement files to UTF-8. Banks
// export CSVs in whatever charset their backoffice grew up with, so the
// reader sniffs before it trusts.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

var bomDecoders = []struct {
	bom     []byte
	decoder func() *encoding.Decoder
}{
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// charsets maps chardet results to decoders for the single-byte encodings
// seen in the wild. Anything unknown falls back to Windows-1252.
var charsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
}

// NewUTF8Reader wraps r in a reader producing UTF-8. Detection order: BOM,
// UTF-8 validity of the sniffed head, chardet heuristic, Windows-1252
// fallback. The BOM checks must come first: a UTF-16 file decodes as valid
// garbage under most single-byte charsets.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(head, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	for _, d := range bomDecoders {
		if bytes.HasPrefix(head, d.bom) {
			return transform.NewReader(br, d.decoder()), nil
		}
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := charsets[result.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
