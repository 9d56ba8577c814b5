package responses

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// FlexibleString accepts a JSON string or number; upstream ids come in both.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*s = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = FlexibleString(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = FlexibleString(number.String())
	return nil
}

func (s FlexibleString) String() string {
	return string(s)
}

// FlexibleInt accepts a JSON number or a numeric string. Anything else decodes to zero.
type FlexibleInt int

func (i *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*i = 0
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*i = FlexibleInt(int(number))
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		*i = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = FlexibleInt(int(parsed))
	return nil
}

func (i FlexibleInt) Int() int {
	return int(i)
}
