package domain

import "errors"

// Validation errors returned before a request reaches the engine
var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidYear     = errors.New("origin year must not be after the current year")
	ErrInvalidRate     = errors.New("rate is out of range")
	ErrInvalidHorizon  = errors.New("years must be between 0 and 100")
	ErrInvalidTierMove = errors.New("unknown city tier move")
	ErrUnknownCity     = errors.New("unknown city")
	ErrUnknownAsset    = errors.New("unknown asset")
	ErrInvalidShares   = errors.New("expense shares must be non-negative and sum to more than zero")
	ErrInvalidClientID = errors.New("client id is required")
)
