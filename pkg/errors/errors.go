// Package errors provides common, reusable error values and helpers.
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrProviderNotFound   = errors.New("provider not found")
	ErrProviderInactive   = errors.New("provider is inactive")
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrItemNotFound       = errors.New("compliance item not found")
	ErrPolicyNotFound     = errors.New("insurance policy not found")

	// Closed-enum violations
	ErrUnknownComplianceType = errors.New("unknown compliance item type")
	ErrUnknownInsuranceType  = errors.New("unknown insurance type")
	ErrUnknownTechnicianRole = errors.New("unknown technician role")
	ErrUnknownCertType       = errors.New("unknown epa 609 certification type")
	ErrUnknownServiceType    = errors.New("unknown service type")

	// Review workflow errors
	ErrNothingToReview = errors.New("record has no submitted data to review")
	ErrAlreadyRejected = errors.New("record is already rejected")
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
