package domain

// Party identifies one of the two slots sharing the ledger. Display names for
// the slots live in configuration; core logic only ever compares slots.
type Party string

const (
	PartyA Party = "PARTY_A"
	PartyB Party = "PARTY_B"
)

// IsValid reports whether p is one of the two known slots.
func (p Party) IsValid() bool {
	return p == PartyA || p == PartyB
}

// Other returns the opposite slot.
func (p Party) Other() Party {
	if p == PartyA {
		return PartyB
	}
	return PartyA
}
