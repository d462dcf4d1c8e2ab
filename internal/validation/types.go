package validation

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var null = []byte("null")

// Int accepts a JSON number or a numeric string, as form inputs often send.
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		*i = 0
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: reflect.TypeOf(Int(0))}
	}
	*i = Int(n)
	return nil
}

func (i Int) Int() int {
	return int(i)
}

func (i Int) Uint() uint {
	if i < 0 {
		return 0
	}
	return uint(i)
}

// Time accepts an ISO-8601 string or epoch milliseconds. Zone-less strings are UTC.
type Time time.Time

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		*t = Time{}
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return &json.UnmarshalTypeError{Value: "number", Type: reflect.TypeOf(Time{})}
		}
		*t = Time(time.UnixMilli(ms).UTC())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*t = Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Time(parsed.UTC())
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(Time{})}
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

// Decimal keeps the textual form of a JSON string or number; the "price" tag checks it.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(strings.TrimSpace(s))
		return nil
	}
	*d = Decimal(data)
	return nil
}

// Nullable tells an absent key apart from an explicit null.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, null) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// Ptr returns nil for null and a pointer to the value otherwise.
func (n Nullable[T]) Ptr() *T {
	if n.Null {
		return nil
	}
	v := n.Value
	return &v
}
