package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Hotel errors
	ErrHotelNotFound = errors.New("hotel not found")

	// Tariff errors
	ErrNoTariffConfigured = errors.New("no tariff configured")
	ErrUnknownAgent       = errors.New("unknown agent")
	ErrTariffValidation   = errors.New("tariff validation error")

	// Quote / allocation errors
	ErrInvalidDateRange = errors.New("invalid date range")

	// Reservation submission errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrDuplicateSubmission    = errors.New("duplicate submission")
	ErrSubmissionInProgress   = errors.New("submission in progress")
	ErrSubmissionRejected     = errors.New("submission rejected by reservation service")

	// Operation errors
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrIdempotencyCheckFailed  = errors.New("idempotency check failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrGatewayUnavailable      = errors.New("external service unavailable")
)
