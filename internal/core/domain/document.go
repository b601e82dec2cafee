package domain

// Period is a date-range preset used as the default reporting window.
type Period string

const (
	PeriodLast6Months  Period = "LAST_6_MONTHS"
	PeriodLast12Months Period = "LAST_12_MONTHS"
	PeriodYearToDate   Period = "YEAR_TO_DATE"
	PeriodAllTime      Period = "ALL_TIME"
)

// IsValid reports whether p is a known preset.
func (p Period) IsValid() bool {
	switch p {
	case PeriodLast6Months, PeriodLast12Months, PeriodYearToDate, PeriodAllTime:
		return true
	}
	return false
}

// Meta holds ledger-wide identity data.
type Meta struct {
	// Parties maps the two slots to their display names, index 0 = PartyA.
	Parties        [2]string      `json:"parties"`
	Counterparties []Counterparty `json:"counterparties"`
	// Logo is an opaque uploaded image (base64 data URL), empty when unset.
	Logo string `json:"logo,omitempty"`
}

// Settings holds user preferences persisted with the ledger.
type Settings struct {
	DefaultPeriod Period `json:"defaultPeriod"`
}

// Document is the single persisted value: the whole ledger state.
// The running debt balance is never stored here; it is always derived
// from the full transaction set.
type Document struct {
	Meta                Meta                 `json:"meta"`
	Settings            Settings             `json:"settings"`
	IncomeTransactions  []IncomeTransaction  `json:"incomeTransactions"`
	ExpenseTransactions []ExpenseTransaction `json:"expenseTransactions"`
	ChangeLog           []ChangeLogEntry     `json:"changeLog"`
}

// NewDocument returns an empty ledger for the given party names.
func NewDocument(partyAName, partyBName string) *Document {
	return &Document{
		Meta: Meta{
			Parties:        [2]string{partyAName, partyBName},
			Counterparties: []Counterparty{},
		},
		Settings:            Settings{DefaultPeriod: PeriodLast6Months},
		IncomeTransactions:  []IncomeTransaction{},
		ExpenseTransactions: []ExpenseTransaction{},
		ChangeLog:           []ChangeLogEntry{},
	}
}

// Clone returns a deep copy of the document. Mutations operate on a clone
// and replace the stored value wholesale, so readers never observe a
// partially-updated transaction set.
func (d *Document) Clone() *Document {
	out := &Document{
		Meta: Meta{
			Parties:        d.Meta.Parties,
			Counterparties: make([]Counterparty, len(d.Meta.Counterparties)),
			Logo:           d.Meta.Logo,
		},
		Settings:            d.Settings,
		IncomeTransactions:  make([]IncomeTransaction, len(d.IncomeTransactions)),
		ExpenseTransactions: make([]ExpenseTransaction, len(d.ExpenseTransactions)),
		ChangeLog:           make([]ChangeLogEntry, len(d.ChangeLog)),
	}
	copy(out.Meta.Counterparties, d.Meta.Counterparties)
	for i, txn := range d.IncomeTransactions {
		txn.Adjustments = cloneAdjustments(txn.Adjustments)
		out.IncomeTransactions[i] = txn
	}
	for i, txn := range d.ExpenseTransactions {
		txn.Adjustments = cloneAdjustments(txn.Adjustments)
		out.ExpenseTransactions[i] = txn
	}
	for i, entry := range d.ChangeLog {
		if entry.Payload != nil {
			payload := make([]byte, len(entry.Payload))
			copy(payload, entry.Payload)
			entry.Payload = payload
		}
		out.ChangeLog[i] = entry
	}
	return out
}

func cloneAdjustments(adjustments []Adjustment) []Adjustment {
	if adjustments == nil {
		return nil
	}
	out := make([]Adjustment, len(adjustments))
	copy(out, adjustments)
	return out
}

// AppendChange records an audit entry on d. Entries are only ever appended.
func (d *Document) AppendChange(entry ChangeLogEntry) {
	d.ChangeLog = append(d.ChangeLog, entry)
}

// FindIncome returns the income transaction with the given ID and its index,
// or nil and -1 when absent.
func (d *Document) FindIncome(transactionID string) (*IncomeTransaction, int) {
	for i := range d.IncomeTransactions {
		if d.IncomeTransactions[i].TransactionID == transactionID {
			return &d.IncomeTransactions[i], i
		}
	}
	return nil, -1
}

// FindExpense returns the expense transaction with the given ID and its
// index, or nil and -1 when absent.
func (d *Document) FindExpense(transactionID string) (*ExpenseTransaction, int) {
	for i := range d.ExpenseTransactions {
		if d.ExpenseTransactions[i].TransactionID == transactionID {
			return &d.ExpenseTransactions[i], i
		}
	}
	return nil, -1
}

// FindCounterparty returns the counterparty with the given ID and its index,
// or nil and -1 when absent.
func (d *Document) FindCounterparty(counterpartyID string) (*Counterparty, int) {
	for i := range d.Meta.Counterparties {
		if d.Meta.Counterparties[i].CounterpartyID == counterpartyID {
			return &d.Meta.Counterparties[i], i
		}
	}
	return nil, -1
}

// CounterpartyInUse reports whether any income transaction references the
// given counterparty.
func (d *Document) CounterpartyInUse(counterpartyID string) bool {
	for i := range d.IncomeTransactions {
		if d.IncomeTransactions[i].CounterpartyID == counterpartyID {
			return true
		}
	}
	return false
}
