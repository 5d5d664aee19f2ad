package data

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRecord(t *testing.T) {
	r := NewRecord("Gouda", "Semi-hard", 45, 5)
	assert.Equal(t, "Gouda Semi-hard 45 5\n", string(EncodeRecord(r)))

	r = NewRecord("Brie", "Soft", 60.25, 7.5)
	r.State = Moldy
	assert.Equal(t, "Brie Soft 60.25 7.5\n", string(EncodeRecord(r)))
}

func TestRecordDecoder_Next(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(EncodeRecord(NewRecord("Gouda", "Semi-hard", 45, 5)))
	buf.Write(EncodeRecord(NewRecord("Brie", "Soft", 60.1, 0.3)))

	dec := NewRecordDecoder(&buf)
	r, err := dec.Next()
	assert.Nil(t, err)
	assert.Equal(t, "Gouda", r.Brand)
	assert.Equal(t, "Semi-hard", r.Type)
	assert.Equal(t, 45.0, r.FatContent)
	assert.Equal(t, 5.0, r.Price)
	assert.Equal(t, Solid, r.State)

	r, err = dec.Next()
	assert.Nil(t, err)
	assert.Equal(t, 60.1, r.FatContent)
	assert.Equal(t, 0.3, r.Price)

	r, err = dec.Next()
	assert.Nil(t, r)
	assert.Equal(t, io.EOF, err)
}

func TestRecordDecoder_TokensSpanLines(t *testing.T) {
	dec := NewRecordDecoder(strings.NewReader("Gouda\nSemi-hard 45\n\n  5"))
	r, err := dec.Next()
	assert.Nil(t, err)
	assert.Equal(t, "Gouda5.000000", r.Key())
}

func TestRecordDecoder_Malformed(t *testing.T) {
	dec := NewRecordDecoder(strings.NewReader("Gouda Semi-hard 45 5\nEdam Hard fat 3\nBrie Soft 60 7.5\n"))
	_, err := dec.Next()
	assert.Nil(t, err)
	_, err = dec.Next()
	assert.Equal(t, ErrMalformedRecord, err)

	dec = NewRecordDecoder(strings.NewReader("Gouda Semi-hard 45 5\nEdam Hard 40\n"))
	_, err = dec.Next()
	assert.Nil(t, err)
	_, err = dec.Next()
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}
