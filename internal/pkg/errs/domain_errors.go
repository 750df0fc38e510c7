package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Venue errors
	ErrVenueNotFound = errors.New("venue not found")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCandidateRejected  = errors.New("candidate range rejected")
	ErrInvalidTransition  = errors.New("invalid workflow transition")
	ErrSubmissionInFlight = errors.New("submission in flight")
	ErrSubmissionFailed   = errors.New("submission failed")

	// Validation errors
	ErrInvalidRange         = errors.New("invalid date range")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Gateway errors
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)
