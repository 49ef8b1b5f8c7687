package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Turf errors
	ErrTurfNotFound           = errors.New("turf not found")
	ErrUnsupportedSport       = errors.New("sport not supported by turf")
	ErrOutsideOperatingHours  = errors.New("slot outside turf operating hours")

	// Booking errors
	ErrBookingNotFound             = errors.New("booking not found")
	ErrInvalidTimeRange            = errors.New("invalid time range")
	ErrSlotConflict                = errors.New("slot conflict")
	ErrAlreadyCancelled            = errors.New("booking already cancelled")
	ErrPastReservationCancellation = errors.New("cannot cancel past reservation")
	ErrInvalidStatusTransition     = errors.New("invalid booking status transition")

	// Waitlist errors
	ErrDuplicateWaitlistEntry = errors.New("duplicate pending waitlist entry")
	ErrWaitlistEntryNotFound  = errors.New("waitlist entry not found")

	// Recurring plan errors
	ErrInvalidRecurrencePlan = errors.New("invalid recurrence plan")
	ErrPlanNotFound          = errors.New("recurring plan not found")

	// Loyalty errors
	ErrLoyaltyAccountNotFound    = errors.New("loyalty account not found")
	ErrInsufficientLoyaltyPoints = errors.New("insufficient loyalty points")

	// Transient errors, retried a bounded number of times before surfacing
	ErrResourceBusy   = errors.New("resource busy")
	ErrStorageFailure = errors.New("storage failure")
)
