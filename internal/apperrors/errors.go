package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingFxRate indicates a non-reporting-currency amount without a positive
// exchange rate. Such rows are rejected at write time instead of being
// silently normalized to zero.
var ErrMissingFxRate = errors.New("missing or non-positive exchange rate")

// ErrCounterpartyInUse indicates a counterparty that is still referenced by
// one or more income transactions and therefore cannot be deleted.
var ErrCounterpartyInUse = errors.New("counterparty is referenced by income transactions")
