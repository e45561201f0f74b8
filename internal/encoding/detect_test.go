package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	assert.Equal(t, "Data;Descrição;Montante", decode(t, []byte("Data;Descrição;Montante")))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date;Amount")...)
	assert.Equal(t, "Date;Amount", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Hi" with a UTF-16 LE BOM.
	input := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}
	assert.Equal(t, "Hi", decode(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Café" in Windows-1252: é is 0xE9, invalid as UTF-8.
	input := []byte{'C', 'a', 'f', 0xE9}
	assert.Equal(t, "Café", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, []byte{}))
}
