// Package errs collects the sentinel errors shared by the relation, schnorr
// and fiatshamir packages, so that callers can match failures with
// errors.Is instead of parsing messages.
package errs

import "errors"

var (
	// ErrInvalidInstanceWitnessPair is returned when a witness, nonce, or
	// response vector does not match the shape of the statement it is
	// being used with, or when a statement is trivially true.
	ErrInvalidInstanceWitnessPair = errors.New("sigma: invalid instance/witness pair")

	// ErrUnassignedGroupVar is returned when evaluating or verifying a
	// relation requires the value of a GroupVar that was never assigned.
	ErrUnassignedGroupVar = errors.New("sigma: unassigned group variable")

	// ErrVerificationFailure is returned when a proof fails its algebraic
	// check, or when a deserialized proof is malformed in a way that must
	// not be distinguishable from an algebraic failure to an attacker.
	ErrVerificationFailure = errors.New("sigma: verification failure")

	// ErrProofSizeMismatch is returned when serialized proof bytes do not
	// have the length implied by the statement shape.
	ErrProofSizeMismatch = errors.New("sigma: proof size mismatch")

	// ErrConflictingAssignment is a programmer error: a GroupVar was
	// assigned two different values.
	ErrConflictingAssignment = errors.New("sigma: conflicting group variable assignment")
)
