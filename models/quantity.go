package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity is the requested order size on a contact submission. Customers type
// either a plain number ("500") or free text ("500-1000 pcs"), so the field
// accepts both JSON forms and remembers which one it received.
type Quantity struct {
	raw    string
	number bool
}

// QuantityFromString rebuilds a Quantity from its stored text form. Text that
// parses as a JSON number is marshaled back as a number.
func QuantityFromString(s string) Quantity {
	q := Quantity{raw: s}
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		q.number = true
	}
	return q
}

// NumberQuantity returns a numeric Quantity.
func NumberQuantity(n float64) Quantity {
	return Quantity{raw: strconv.FormatFloat(n, 'f', -1, 64), number: true}
}

// TextQuantity returns a free-text Quantity.
func TextQuantity(s string) Quantity {
	return Quantity{raw: s}
}

func (q Quantity) String() string { return q.raw }

// IsNumber reports whether the quantity was supplied as a JSON number.
func (q Quantity) IsNumber() bool { return q.number }

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		q.raw, q.number = text, false
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity must be a number or a string")
	}
	q.raw, q.number = n.String(), true
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.number && json.Valid([]byte(q.raw)) {
		return []byte(q.raw), nil
	}
	return json.Marshal(q.raw)
}
