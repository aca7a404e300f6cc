package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auth / OTP session errors
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrRateLimited        = errors.New("too many codes requested")
	ErrSessionNotFound    = errors.New("otp session not found")
	ErrSessionExpired     = errors.New("otp session expired")
	ErrSessionConsumed    = errors.New("otp session already consumed")
	ErrCodeMismatch       = errors.New("verification code mismatch")
	ErrTooManyAttempts    = errors.New("too many verification attempts")

	// Bag errors
	ErrBagNotFound               = errors.New("bag not found")
	ErrBagAccessDenied           = errors.New("bag access denied")
	ErrEmptyOrder                = errors.New("order has no items")
	ErrUnknownServiceItem        = errors.New("unknown service item")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrTransitionConflict        = errors.New("concurrent status transition")
	ErrLocationLockedAfterPickup = errors.New("locations locked after pickup")

	// Validation errors
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrInvalidNote     = errors.New("invalid note")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrBatchTooLarge   = errors.New("batch exceeds the maximum size")

	// Location / catalog errors
	ErrLocationNotFound = errors.New("location not found")
	ErrDuplicateQRToken = errors.New("duplicate qr token")
	ErrServiceNotFound  = errors.New("service item not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
