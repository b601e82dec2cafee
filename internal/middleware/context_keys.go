package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// partyKey is the key used to store the authenticated party slot.
const partyKey = contextKey("party")

// GetPartyFromContext retrieves the authenticated party slot from the Gin
// context. It returns the slot and a boolean indicating if it was found.
func GetPartyFromContext(c *gin.Context) (domain.Party, bool) {
	partyVal, exists := c.Get(string(partyKey))
	if !exists {
		partyVal = c.Request.Context().Value(partyKey)
		if partyVal == nil {
			return "", false
		}
	}

	party, ok := partyVal.(domain.Party)
	if !ok || !party.IsValid() {
		return "", false
	}
	return party, true
}
