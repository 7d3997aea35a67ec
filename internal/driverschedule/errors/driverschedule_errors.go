package driverscheduleerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidStatusTransition = apperror.Wrapf(apperror.ErrInvalidState, "Invalid status transition")
	ErrNotEditable             = apperror.Wrapf(apperror.ErrInvalidState, "Only pending schedules can be edited")
	ErrPassUnavailable         = apperror.Wrapf(apperror.ErrInvalidState, "Digital pass is no longer valid for an arrived trip")

	ErrDriverNotEligible  = apperror.Wrapf(store.ErrValidation, "Driver must be an active employee flagged as driver")
	ErrDropBeforePickup   = apperror.Wrapf(store.ErrValidation, "Drop time cannot be before pickup time")
	ErrOrderNumberMissing = apperror.Wrapf(store.ErrValidation, "Order number is required")
	ErrLocationMissing    = apperror.Wrapf(store.ErrValidation, "Pickup and drop locations are required")
	ErrInvalidWindow      = apperror.Wrapf(store.ErrValidation, "Calendar start must not be after end")
)
