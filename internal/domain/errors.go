package domain

import "errors"

var (
	// ErrNoPriceAvailable aborts an analysis: no plan can be built without a reference price.
	ErrNoPriceAvailable = errors.New("no price available")
	// ErrInvalidInput marks rejected calculator input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyQuery is returned when no asset identifier was supplied.
	ErrEmptyQuery = errors.New("empty asset query")
)
