package entity

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrVisaTypesRequired = errors.New("at least one visa type is required")
	ErrInvalidVisaType   = errors.New("invalid visa type")
	ErrInvalidStatus     = errors.New("invalid lead status")
)
