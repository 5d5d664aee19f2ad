package data

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedRecord = errors.New("malformed record, numeric field does not parse")
)

const fieldsPerRecord = 4

// EncodeRecord Encode a record as one line of the flat file: brand, type, fat content, price.
// The state is not persisted.
func EncodeRecord(r *Record) []byte {
	var sb strings.Builder
	sb.WriteString(r.Brand)
	sb.WriteByte(' ')
	sb.WriteString(r.Type)
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(r.FatContent))
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(r.Price))
	sb.WriteByte('\n')
	return []byte(sb.String())
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RecordDecoder reads whitespace separated quadruples off a stream.
// Line breaks are plain separators, a record may span lines.
type RecordDecoder struct {
	scanner *bufio.Scanner
}

func NewRecordDecoder(r io.Reader) *RecordDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &RecordDecoder{scanner: scanner}
}

// Next Decode the next record. It returns io.EOF when the input is exhausted,
// io.ErrUnexpectedEOF on a truncated tail and ErrMalformedRecord when a numeric field does not parse.
func (d *RecordDecoder) Next() (*Record, error) {
	var tokens [fieldsPerRecord]string
	for i := 0; i < fieldsPerRecord; i++ {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				return nil, err
			}
			if i == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		tokens[i] = d.scanner.Text()
	}

	fatContent, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return nil, ErrMalformedRecord
	}
	price, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return nil, ErrMalformedRecord
	}
	return NewRecord(tokens[0], tokens[1], fatContent, price), nil
}
