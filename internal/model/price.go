package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a JSON value that is either a number or free text.
// Several services and courses are quoted on request and carry
// strings like "請查詢" instead of an amount.
type Price struct {
	amount  float64
	text    string
	numeric bool
}

// NumericPrice builds a Price from an amount.
func NumericPrice(amount float64) Price {
	return Price{amount: amount, numeric: true}
}

// TextPrice builds a Price from free text.
func TextPrice(text string) Price {
	return Price{text: text}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price{amount: n, numeric: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price must be a number or a string: %w", err)
	}
	*p = Price{text: s}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return json.Marshal(p.amount)
	}
	return json.Marshal(p.text)
}

// IsNumeric reports whether the price carries an amount.
func (p Price) IsNumeric() bool {
	return p.numeric
}

// Amount returns the numeric amount, or 0 for text prices.
func (p Price) Amount() float64 {
	if !p.numeric {
		return 0
	}
	return p.amount
}

// Text returns the free-text form, or "" for numeric prices.
func (p Price) Text() string {
	return p.text
}

// Display renders the price for catalog detail views:
// 6800 → "HK$6,800", "請查詢" → "HK$請查詢".
func (p Price) Display() string {
	if p.numeric {
		return "HK$" + FormatAmount(p.amount)
	}
	return "HK$" + p.text
}

// DisplayOrInquire renders the price for list views, where text
// prices fall back to the inquire label instead of being prefixed.
func (p Price) DisplayOrInquire() string {
	if p.numeric {
		return "HK$" + FormatAmount(p.amount)
	}
	return "請查詢"
}

// Points is the loyalty-points estimate: floor of the amount for
// numeric prices, 0 otherwise.
func (p Price) Points() int {
	if !p.numeric {
		return 0
	}
	return int(math.Floor(p.amount))
}

// FormatAmount renders an amount with thousands separators.
// Whole amounts drop the fraction: 6800 → "6,800". The amount is
// rounded to cents once, before grouping, so a fraction that carries
// into the next dollar (6800.999 → 6,801) stays consistent.
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	out := b.String()
	if frac != "00" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
