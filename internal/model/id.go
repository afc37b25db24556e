package model

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ID is an identifier assigned by the remote API. The API hands out integers,
// but ID keeps the textual form so it can be dropped into URL paths and
// string-typed request fields without conversion.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// Int64 reports the numeric value of id when it holds an integer.
func (id ID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

// MarshalJSON writes canonical integer ids as JSON numbers and everything else,
// including the empty id, as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int64(); ok && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("id must be a number or string, got %s", data)
	}
	*id = ID(data)
	return nil
}
