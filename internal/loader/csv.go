package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"uni-seeder/internal/utils/errcode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV loads every data row of the file at path, in file order.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errcode.ErrInputFile, err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errcode.ErrInputFile, path, err)
	}
	return records, nil
}

// ParseCSV reads a header row followed by data rows. Short rows leave the
// missing columns absent and extra cells are dropped; cell contents are not
// interpreted.
func ParseCSV(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			fields[name] = row[i]
		}
		records = append(records, Record{line: line, fields: fields})
	}

	return records, nil
}
