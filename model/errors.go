// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIntegrity is the sentinel wrapped by every IntegrityError;
	// errors.Is(err, ErrIntegrity) detects the fatal class without
	// caring which invariant broke.
	ErrIntegrity = errors.New("model: integrity violation")

	// ErrEnumValue is returned by the enum parsers for unknown strings.
	ErrEnumValue = errors.New("model: unknown enum value")

	// ErrNilBuilding is returned when a nil *Building reaches NewIndex.
	ErrNilBuilding = errors.New("model: building is nil")
)

// IntegrityError names the violated structural invariant and the entity
// that broke it. It signals a defect in whatever produced the snapshot
// (codec, generator, mutation layer), never a design flaw to iterate on;
// design flaws are Issues.
type IntegrityError struct {
	// Invariant is a short, stable phrase: "duplicate id",
	// "dangling reference", "non-contiguous floors", ...
	Invariant string

	// EntityID is the offending entity, when one can be named.
	EntityID string
}

// Error implements error.
func (e *IntegrityError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("model: integrity: %s", e.Invariant)
	}
	return fmt.Sprintf("model: integrity: %s (%s)", e.Invariant, e.EntityID)
}

// Unwrap ties every IntegrityError to the ErrIntegrity sentinel.
func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

// integrityErr builds the error for one broken invariant.
func integrityErr(invariant, entityID string) error {
	return &IntegrityError{Invariant: invariant, EntityID: entityID}
}
