package loader

import (
	"bytes"
	"encoding/csv"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/KirkDiggler/build-roller/internal/errors"
)

const fieldSeparator = ';'

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read data file %q", path)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode data file %q", path)
	}

	return parseCSV(text)
}

// decode returns UTF-8 text, falling back to Latin-1 when raw is not valid UTF-8
func decode(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}
	return charmap.ISO8859_1.NewDecoder().Bytes(raw)
}

func parseCSV(text []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = fieldSeparator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse semicolon separated rows")
	}
	return rows, nil
}
