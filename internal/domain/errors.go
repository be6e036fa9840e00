package domain

import "errors"

var (
	ErrVehicleNotFound = errors.New("car not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrMissingBookingInfo = errors.New("missing required booking information")
	ErrBookingIDTaken     = errors.New("booking id already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
