// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// RejectCode - reject codes as sent back to peers
type RejectCode byte

// reject codes
const (
	RejectMalformed   RejectCode = 0x01
	RejectInvalid     RejectCode = 0x10
	RejectObsolete    RejectCode = 0x11
	RejectDuplicate   RejectCode = 0x12
	RejectNonstandard RejectCode = 0x40
)

// peer misbehaviour scores
const (
	ScoreLow  = 10
	ScoreHigh = 100
)

// RejectError - a consensus validation failure
//
// Class is one of the error instances of this package so that
// errors.Is and the IsErrXxx predicates work on a reject.
// Score is the misbehaviour value the caller may charge the peer that
// relayed the item; this package never applies it.
type RejectError struct {
	Class  error
	Code   RejectCode
	Score  int
	Reason string
	Debug  string
}

// Reject - create a reject of a given class
func Reject(class error, score int, code RejectCode, reason string) *RejectError {
	return &RejectError{
		Class:  class,
		Code:   code,
		Score:  score,
		Reason: reason,
	}
}

// WithDebug - attach a diagnostic message
func (r *RejectError) WithDebug(debug string) *RejectError {
	r.Debug = debug
	return r
}

// Error - the error interface
func (r *RejectError) Error() string {
	if "" == r.Debug {
		return fmt.Sprintf("%s (code %d)", r.Reason, r.Code)
	}
	return fmt.Sprintf("%s, %s (code %d)", r.Reason, r.Debug, r.Code)
}

// Unwrap - expose the class
func (r *RejectError) Unwrap() error {
	return r.Class
}

// AsReject - extract a reject from an error chain
func AsReject(err error) (*RejectError, bool) {
	var r *RejectError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
