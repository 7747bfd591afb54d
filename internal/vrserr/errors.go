// Package vrserr defines the error taxonomy shared across the VRS core:
// each kind is a distinct type so callers can discriminate with
// errors.As instead of string matching.
package vrserr

import "fmt"

// InvalidInputError signals a malformed external expression, bad
// coordinates, or another constraint violation caught at the API
// boundary.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// InvalidAlphabetError signals residues outside the declared reference
// alphabet.
type InvalidAlphabetError struct {
	Alphabet string
	Sequence string
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("sequence %q contains residues outside alphabet %q", e.Sequence, e.Alphabet)
}

// UnknownReferenceError signals an identifier that could not be
// resolved through a SequenceRepository (translate_*) or an object
// store (deref).
type UnknownReferenceError struct {
	Identifier string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown reference %q", e.Identifier)
}

// ReferenceMismatchError signals that require_validation failed: the
// caller-supplied reference allele disagreed with the repository.
type ReferenceMismatchError struct {
	Accession string
	Start, End int64
	Expected  string
	Observed  string
}

func (e *ReferenceMismatchError) Error() string {
	return fmt.Sprintf("reference mismatch at %s:%d-%d: expected %q, observed %q",
		e.Accession, e.Start, e.End, e.Expected, e.Observed)
}

// UnrepresentableError signals that a target grammar cannot express
// the given VRS object.
type UnrepresentableError struct {
	Format string
	Reason string
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("cannot represent variation as %s: %s", e.Format, e.Reason)
}

// SerializationError signals an attempt to digest an incomplete object
// graph: an identifiable sub-object lacking both inlined content and a
// valid reference.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s", e.Reason)
}

// BackendUnavailableError signals a transient failure of an injected
// collaborator (sequence repository, object store).
type BackendUnavailableError struct {
	Backend string
	Err     error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend %s unavailable: %v", e.Backend, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// ToleranceExceededError signals that a batch operation (the VCF
// annotator's strict mode) saw more per-record failures than the
// caller is willing to tolerate.
type ToleranceExceededError struct {
	Failed int
}

func (e *ToleranceExceededError) Error() string {
	return fmt.Sprintf("%d record(s) failed translation", e.Failed)
}
