package usecase

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputePrice prices a trip: rate times distance plus the category surcharge.
// A percentage of exactly 1 marks the base category and adds nothing.
func ComputePrice(pricePerKm, distance, percentage decimal.Decimal) decimal.Decimal {
	base := pricePerKm.Mul(distance)
	if percentage.Equal(decimal.NewFromInt(1)) {
		return base.Round(2)
	}
	return base.Add(base.Mul(percentage).Div(hundred)).Round(2)
}
