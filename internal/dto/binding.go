package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// The partyslot rule backs the binding tags in this package, so it is
// registered as soon as the package is linked in.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("partyslot", validPartySlot)
	}
}

// validPartySlot accepts only the two known party slots.
func validPartySlot(fl validator.FieldLevel) bool {
	return domain.Party(fl.Field().String()).IsValid()
}
