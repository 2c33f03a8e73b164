package services

import "github.com/shopspring/decimal"

// TaxRate is the flat sales tax applied to every cart and transaction.
var TaxRate = decimal.RequireFromString("0.10")

// CalculateTax rounds half away from zero to two decimal places, so a
// subtotal ending in .x5 rounds up in magnitude.
func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}
