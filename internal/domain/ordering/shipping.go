package ordering

import (
	"strings"

	"github.com/dyqani/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Country is a supported COD delivery destination
type Country string

const (
	CountryKosovo    Country = "kosovo"
	CountryAlbania   Country = "albania"
	CountryMacedonia Country = "macedonia"
)

// Shipping fees per destination. Kosovo carries the flat postman fee for
// cash-on-delivery; Albania and Macedonia share one cross-border rate.
var (
	kosovoFee      = decimal.NewFromFloat(2.40)
	crossBorderFee = decimal.NewFromFloat(4.00)
)

// ParseCountry normalizes and validates a destination country string
func ParseCountry(raw string) (Country, bool) {
	c := Country(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.IsValid()
}

// IsValid checks whether the country is a supported destination
func (c Country) IsValid() bool {
	switch c {
	case CountryKosovo, CountryAlbania, CountryMacedonia:
		return true
	}
	return false
}

// String returns the country name
func (c Country) String() string {
	return string(c)
}

// ShippingFee returns the flat delivery fee for the destination.
// Callers must validate the country first; an unknown value maps to the
// cross-border rate rather than panicking.
func ShippingFee(c Country) valueobject.Money {
	if c == CountryKosovo {
		return valueobject.NewMoneyEUR(kosovoFee)
	}
	return valueobject.NewMoneyEUR(crossBorderFee)
}

// DistributeShipping splits an aggregate shipping fee across batch line
// items proportionally to each item's share of the merchandise subtotal.
// Shares are rounded to cents; the last item absorbs the rounding remainder
// so the shares always sum exactly to the aggregate fee. A zero subtotal
// assigns the whole fee to the last item.
func DistributeShipping(subtotals []decimal.Decimal, fee valueobject.Money) []valueobject.Money {
	shares := make([]valueobject.Money, len(subtotals))
	if len(subtotals) == 0 {
		return shares
	}

	total := decimal.Zero
	for _, s := range subtotals {
		total = total.Add(s)
	}

	assigned := decimal.Zero
	for i, s := range subtotals {
		if i == len(subtotals)-1 {
			shares[i] = valueobject.NewMoneyEUR(fee.Amount().Sub(assigned))
			break
		}
		var share decimal.Decimal
		if total.IsPositive() {
			share = fee.Amount().Mul(s).Div(total).Round(2)
		}
		shares[i] = valueobject.NewMoneyEUR(share)
		assigned = assigned.Add(share)
	}

	return shares
}
