// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotPermutation is the domain error returned when a caller tries to
// build a permutation diagram from a sequence that is not a permutation of
// {1..n} (duplicate or out-of-range entries).
var ErrNotPermutation = errors.New("not a permutation")

// ErrMismatchedKind is a contract-violation error returned when
// WithOrderedKPrefix, DistributeKPrefix or ContainingPattern is called on a
// Swap-basis permutation factory. Per spec.md §7 this is a fatal contract
// violation: code that can trigger it is a bug in the caller, not a
// recoverable condition, but we still return it rather than panic so tests
// can assert on it without a recover().
var ErrMismatchedKind = errors.New("mismatched factory kind")

// Error returns the error status of the Factory. It mirrors the teacher
// library's sticky-error pattern: an empty string means no error occurred.
func (f *Factory) Error() string {
	if f.err == nil {
		return ""
	}
	return f.err.Error()
}

// Errored reports whether a computation on f has previously failed.
func (f *Factory) Errored() bool {
	return f.err != nil
}

func (f *Factory) seterror(format string, a ...interface{}) Edge {
	wrapped := errors.Wrapf(fmt.Errorf(format, a...), "polydd")
	if f.err != nil {
		f.err = errors.Wrap(f.err, wrapped.Error())
		return Edge{}
	}
	f.err = wrapped
	logger().WithField("component", "factory").Error(f.err)
	return Edge{}
}
