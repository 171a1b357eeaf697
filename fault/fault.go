// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrBadPayload                 = RecordError("transaction payload cannot be decoded")
	ErrBadSignature               = InvalidError("signature does not verify")
	ErrBadVersion                 = InvalidError("unsupported payload version")
	ErrBlockHeightMismatch        = InvalidError("block height is not the next in sequence")
	ErrBlockNotFound              = NotFoundError("block not found")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrChecksumMismatch           = InvalidError("checksum mismatch")
	ErrDatabaseIsNewer            = ProcessError("database version is newer than this program")
	ErrDuplicateProtocol          = ExistsError("token protocol is already registered")
	ErrDuplicateToken             = ExistsError("token is already registered")
	ErrEmptyChain                 = NotFoundError("chain has no blocks")
	ErrFieldTooLong               = LengthError("field too long")
	ErrHandlerExists              = ExistsError("handler already registered")
	ErrHeightMismatch             = InvalidError("token was registered at a different height")
	ErrHeightOutOfRange           = InvalidError("block height is out of range")
	ErrInvalidBlockHeaderSize     = LengthError("invalid block header size")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidIPAddress           = InvalidError("invalid IP address")
	ErrInvalidKeyID               = InvalidError("invalid key id")
	ErrInvalidKeyLength           = LengthError("invalid key length")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidProtocolFullName    = InvalidError("invalid token protocol full name")
	ErrInvalidProtocolName        = InvalidError("invalid token protocol name")
	ErrInvalidRegSign             = InvalidError("invalid token registration signer")
	ErrInvalidSignatureLength     = LengthError("invalid signature length")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidTokenID             = InvalidError("invalid token id")
	ErrInvalidTxType              = InvalidError("no handler for transaction type")
	ErrInvalidVoteOutcome         = InvalidError("invalid vote outcome")
	ErrKeyExists                  = ExistsError("registry key already exists")
	ErrMerkleRootMismatch         = InvalidError("merkle root does not match transactions")
	ErrMetadataTooLong            = LengthError("metadata too long")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrMissingPrivateKey          = InvalidError("missing private key")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotLink                    = InvalidError("not a link")
	ErrNullField                  = InvalidError("required field is null")
	ErrPreviousBlockMismatch      = InvalidError("previous block digest does not match")
	ErrProtocolInUse              = ProcessError("token protocol still has registered tokens")
	ErrProtocolNotFound           = NotFoundError("token protocol is not registered")
	ErrRateLimiting               = InvalidError("rate limiting")
	ErrTokenNotFound              = NotFoundError("no such record")
	ErrTransactionAlreadyActive   = ProcessError("registry transaction already active")
	ErrTransactionCountOutOfRange = LengthError("transaction count out of range")
	ErrTruncatedRecord            = RecordError("record is truncated")
	ErrUndoFailed                 = ProcessError("undo of special transaction failed")
	ErrUnknownChain               = InvalidError("chain is not supported")
	ErrUnexpectedTrailingData     = RecordError("unexpected trailing data")
	ErrWalletNotAvailable         = ProcessError("wallet is not available")
	ErrWrongNetwork               = InvalidError("wrong network")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := classOf(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := classOf(e).(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := classOf(e).(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := classOf(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := classOf(e).(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := classOf(e).(RecordError); return ok }

// a reject carries its class inside
func classOf(e error) error {
	if r, ok := e.(*RejectError); ok {
		return r.Class
	}
	return e
}
