package services

import (
	"corebank/internal/models"

	"github.com/shopspring/decimal"
)

// currencyConverter converts through the base currency: amount in the
// source currency is worth amount * from.RateToBase base units, which
// buy that many / to.RateToBase target units.
type currencyConverter struct{}

// NewCurrencyConverter creates a rate-table currency converter.
func NewCurrencyConverter() CurrencyConverterInterface {
	return currencyConverter{}
}

// Convert converts an amount between currencies, rounded to two decimal
// places. Same-currency conversions only round.
func (currencyConverter) Convert(amount decimal.Decimal, from, to models.Currency) decimal.Decimal {
	if from.Code == to.Code {
		return amount.Round(2)
	}

	return amount.
		Mul(from.RateToBase).
		Div(to.RateToBase).
		Round(2)
}
