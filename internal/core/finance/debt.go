package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// DebtDelta computes a transaction's signed contribution to the running
// "Party B owes Party A" balance.
//
// Sign convention per transaction kind and responsible party:
//
//	INCOME  collected by A -> -partyBShare (A holds B's share, owes it back)
//	INCOME  collected by B -> +partyAShare
//	EXPENSE paid by A      -> +partyBShare (B owes A their share of the outlay)
//	EXPENSE paid by B      -> -partyAShare
//
// Addition is commutative, so summing deltas over the transaction set in
// any order yields the same balance.
func DebtDelta(txn domain.Transaction, reportingCurrency string) (decimal.Decimal, error) {
	net, err := NetAmount(txn, reportingCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	shareA, shareB := ComputeSplit(net, txn.Split)

	switch txn.Kind {
	case domain.Income:
		if txn.ResponsibleParty == domain.PartyA {
			return shareB.Neg(), nil
		}
		return shareA, nil
	case domain.Expense:
		if txn.ResponsibleParty == domain.PartyA {
			return shareB, nil
		}
		return shareA.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s' for transaction ID %s", txn.Kind, txn.TransactionID)
	}
}

// DebtBalance recomputes the running balance from the full transaction set.
// Positive means Party B owes Party A, negative the reverse, zero settled.
// The balance is always derived; it is never stored.
func DebtBalance(doc *domain.Document, reportingCurrency string) (decimal.Decimal, error) {
	balance := decimal.Zero
	for i := range doc.IncomeTransactions {
		delta, err := DebtDelta(doc.IncomeTransactions[i].Transaction, reportingCurrency)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(delta)
	}
	for i := range doc.ExpenseTransactions {
		delta, err := DebtDelta(doc.ExpenseTransactions[i].Transaction, reportingCurrency)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(delta)
	}
	return balance, nil
}
