// Package finance implements the pure computation kernel of the shared
// ledger: currency normalization, adjustment application, split
// computation, debt accrual and filtering/aggregation. All functions are
// total over their documented input domain, perform no I/O and hold no
// state, so they are safe to call repeatedly with the same inputs.
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// Normalize converts an amount in its native currency into the reporting
// currency. fxRate is expressed as units of currencyCode per one unit of
// the reporting currency, so a foreign amount divides by the rate.
//
// A zero or negative rate on a foreign-currency amount returns
// apperrors.ErrMissingFxRate rather than a silent zero; callers on the
// write path reject such rows so stored data is always normalizable.
func Normalize(amount decimal.Decimal, currencyCode string, fxRate decimal.Decimal, reportingCurrency string) (decimal.Decimal, error) {
	if currencyCode == reportingCurrency {
		return amount, nil
	}
	if fxRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: currency %s needs a positive rate against %s", apperrors.ErrMissingFxRate, currencyCode, reportingCurrency)
	}
	return amount.Div(fxRate), nil
}

// NetAmount normalizes a transaction's amount and applies its adjustments
// in stored order, yielding the net amount in the reporting currency.
func NetAmount(txn domain.Transaction, reportingCurrency string) (decimal.Decimal, error) {
	base, err := Normalize(txn.Amount, txn.CurrencyCode, txn.FxRate, reportingCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return ApplyAdjustments(base, txn.Adjustments), nil
}
