package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrConstruction marks a malformed grouped sample (groups and value
	// arrays out of step).
	ErrConstruction = errors.New("grouped sample construction failed")

	// ErrConfiguration marks an invalid caller-supplied option, such as a
	// subsample size larger than the population.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDomain marks input outside a metric's mathematical domain, e.g.
	// non-positive values passed to a Theil index.
	ErrDomain = errors.New("value outside metric domain")

	// Resolution errors
	ErrNotFound     = errors.New("resource not found")
	ErrColumnAbsent = fmt.Errorf("%w: column", ErrNotFound)
)

// Error constructors with context

func NewConstructionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrConstruction, reason)
}

func NewConfigurationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfiguration, field, reason)
}

func NewDomainError(index string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrDomain, index, reason)
}

// Error checking helpers

func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}
