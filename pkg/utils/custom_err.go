package utils

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrExchangeFailed      = errors.New("recommendation exchange failed")
	ErrDestinationNotFound = errors.New("destination not found in current result")
)

// ExchangeFailedMessage is the single user-visible message for every failed
// exchange: network errors, non-success statuses and malformed responses alike.
const ExchangeFailedMessage = "Failed to fetch recommendations. Please try again."
