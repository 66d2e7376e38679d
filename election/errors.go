// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	ErrFileUnavailable     = errors.New("file unavailable")
	ErrEmptyPartyDirectory = errors.New("party directory is empty")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrNotFound            = errors.New("no such constituency")
	ErrInvalidElectorCount = errors.New("invalid elector count")
	ErrInvalidTotal        = errors.New("invalid vote total")
	ErrInvalidVoteCount    = errors.New("invalid vote count")
	ErrIncompleteBlock     = errors.New("incomplete results block")
	ErrUnknownList         = errors.New("unknown list id")
)

// RecordError reports a line that could not be parsed.
// Line is 1-based.
type RecordError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// StrideError reports a results file whose length is not a whole number of
// blocks.
type StrideError struct {
	Lines  int
	Stride int
}

func (e *StrideError) Error() string {
	return fmt.Sprintf("%v: %d lines is not a multiple of %d (%d trailing)",
		ErrIncompleteBlock, e.Lines, e.Stride, e.Lines%e.Stride)
}

func (e *StrideError) Unwrap() error { return ErrIncompleteBlock }
