// Package cpabeerr defines the error kinds the CP-ABE core can produce
// and a per-goroutine last-error shim for callers ported from the
// original C API's thread_local bswabe_error().
//
// Every exported cpabe operation returns an idiomatic Go error as its
// primary failure surface; SetLast/LastError exist only so callers that
// expect the original library's last_error() string can still get it.
package cpabeerr

import (
	"errors"
	"fmt"
)

// ErrPolicyNotSatisfied is returned by Decrypt when the caller's private
// key does not satisfy the ciphertext's policy.
var ErrPolicyNotSatisfied = errors.New("cpabe: attributes in key do not satisfy policy")

// ErrInvalidAttribute is returned by KeyGen when an attribute label
// contains a byte outside the allowed set (printable ASCII, no
// whitespace, no NUL).
var ErrInvalidAttribute = errors.New("cpabe: attribute contains a disallowed byte")

// DeserializeError wraps truncation, length-overflow, or element-decode
// failures encountered while reading a serialized artifact.
type DeserializeError struct {
	Context string
	Cause   error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("cpabe: deserialize %s: %v", e.Context, e.Cause)
}

func (e *DeserializeError) Unwrap() error { return e.Cause }

// NewDeserializeError wraps cause with the artifact/field it failed on.
func NewDeserializeError(context string, cause error) *DeserializeError {
	return &DeserializeError{Context: context, Cause: cause}
}

// CryptoError wraps a fatal failure from the pairing library itself
// (random sampling, pairing evaluation, curve arithmetic).
type CryptoError struct {
	Context string
	Cause   error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("cpabe: crypto failure in %s: %v", e.Context, e.Cause)
}

func (e *CryptoError) Unwrap() error { return e.Cause }

// NewCryptoError wraps cause with the operation it failed in.
func NewCryptoError(context string, cause error) *CryptoError {
	return &CryptoError{Context: context, Cause: cause}
}
