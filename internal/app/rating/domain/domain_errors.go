package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrRuleNotFound      = errors.New("rule not found")
	ErrEmptyProvider     = errors.New("provider cannot be empty")
)
