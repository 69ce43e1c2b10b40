package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

var currencySymbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

func ParseMoney(amount, iso string) (Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	if parsedAmount.IsNegative() {
		return Money{}, fmt.Errorf("amount[%s] is negative", amount)
	}

	parsedCurrency, err := currency.ParseISO(iso)
	if err != nil {
		return Money{}, fmt.Errorf("currency[%s] is not valid: %w", iso, err)
	}

	return Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Label renders the amount with two decimals behind the currency symbol, e.g. "$5.99".
// Currencies without a known symbol fall back to the ISO code: "CHF 5.99".
func (m Money) Label() string {
	if symbol, ok := currencySymbols[m.Currency]; ok {
		return symbol + m.Amount.StringFixed(2)
	}
	return m.Currency.String() + " " + m.Amount.StringFixed(2)
}
