package record

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// PriceRange is the ticket price band some event payloads carry
type PriceRange struct {
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Currency string          `json:"currency,omitempty"`
}

func (p PriceRange) String() string {
	cur := strings.TrimSpace(p.Currency)
	if p.Min.Equal(p.Max) {
		return strings.TrimSpace(fmt.Sprintf("%s %s", p.Min.StringFixed(2), cur))
	}
	return strings.TrimSpace(fmt.Sprintf("%s - %s %s", p.Min.StringFixed(2), p.Max.StringFixed(2), cur))
}

func extractPrice(obj gjson.Result) *PriceRange {
	band := obj.Get("priceRanges.0")
	if band.IsObject() {
		min, okMin := decimalOf(band.Get("min"))
		max, okMax := decimalOf(band.Get("max"))
		if !okMin && !okMax {
			return nil
		}
		if !okMin {
			min = max
		}
		if !okMax {
			max = min
		}
		return &PriceRange{Min: min, Max: max, Currency: band.Get("currency").String()}
	}

	if price, ok := decimalOf(obj.Get("price")); ok {
		return &PriceRange{Min: price, Max: price, Currency: obj.Get("currency").String()}
	}
	return nil
}

func decimalOf(v gjson.Result) (decimal.Decimal, bool) {
	switch v.Type {
	case gjson.Number:
		d, err := decimal.NewFromString(v.Raw)
		return d, err == nil
	case gjson.String:
		d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(v.String()), "$"))
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
