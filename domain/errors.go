package domain

import "errors"

// Category sentinels. Domain packages wrap these so the delivery layer can
// map any engine failure onto an http status while callers still match the
// specific condition.
var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized covers every caller-identity failure: not owner, not
	// seller, not royalty manager, not exchange participant, not platform owner.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotApproved means the engine is not approved to move the caller's units.
	ErrNotApproved = errors.New("engine not approved")

	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")
)
