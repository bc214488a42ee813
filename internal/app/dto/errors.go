package dto

import "errors"

// Repair errors
var (
	ErrInvalidConfig  = errors.New("invalid repair configuration")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrRepairFailed   = errors.New("network repair failed")
	ErrMissingNetwork = errors.New("network ID is required")
)
