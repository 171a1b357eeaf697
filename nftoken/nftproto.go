// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"fmt"

	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/merkle"
	"github.com/bitmark-inc/nftokend/util"
)

// limits on protocol fields
const (
	MinimumProtocolNameLength = 3
	MaximumProtocolNameLength = 24
	MaximumMimeTypeLength     = 255
	MaximumSchemaURILength    = 2048
)

// RegSign - who must sign the token registrations of a protocol
type RegSign uint64

// registration signers
const (
	SelfSign      RegSign = 1 // the token owner
	SignByCreator RegSign = 2 // the protocol owner
	SignPayer     RegSign = 3 // the funding key
)

// IsValid - one of the known signers
func (s RegSign) IsValid() bool {
	return s >= SelfSign && s <= SignPayer
}

// String - for logging and JSON
func (s RegSign) String() string {
	switch s {
	case SelfSign:
		return "self-sign"
	case SignByCreator:
		return "sign-by-creator"
	case SignPayer:
		return "sign-payer"
	default:
		return "invalid"
	}
}

// MarshalText - name text for JSON
func (s RegSign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseRegSign - signer from its name text
func ParseRegSign(text string) (RegSign, error) {
	for s := SelfSign; s <= SignPayer; s += 1 {
		if s.String() == text {
			return s, nil
		}
	}
	return 0, fault.ErrInvalidRegSign
}

// flag bits of a protocol
const (
	flagTransferable     = 1 << 0
	flagImmutable        = 1 << 1
	flagMetadataEmbedded = 1 << 2
	flagMask             = flagTransferable | flagImmutable | flagMetadataEmbedded
)

// NftProtocol - a registered kind of non-fungible token
type NftProtocol struct {
	ProtocolID        uint64
	Name              string
	OwnerKeyID        account.KeyID
	RegSign           RegSign
	MetadataMimeType  string
	MetadataSchemaURI string
	Transferable      bool
	Immutable         bool
	MetadataEmbedded  bool
}

// ProtoRegTx - payload of a protocol registration transaction
type ProtoRegTx struct {
	Version   uint64
	Protocol  NftProtocol
	Signature account.Signature
}

// String - for logging
func (p *NftProtocol) String() string {
	return fmt.Sprintf("NftProtocol(protocol: %s  name: %q  owner: %s  sign: %s)",
		ProtocolName(p.ProtocolID), p.Name, p.OwnerKeyID, p.RegSign)
}

func (p *NftProtocol) flags() uint64 {
	f := uint64(0)
	if p.Transferable {
		f |= flagTransferable
	}
	if p.Immutable {
		f |= flagImmutable
	}
	if p.MetadataEmbedded {
		f |= flagMetadataEmbedded
	}
	return f
}

func (p *NftProtocol) pack(buffer []byte) []byte {
	buffer = util.AppendUint64(buffer, p.ProtocolID)
	buffer = util.AppendBytes(buffer, []byte(p.Name))
	buffer = append(buffer, p.OwnerKeyID[:]...)
	buffer = util.AppendUint64(buffer, uint64(p.RegSign))
	buffer = util.AppendBytes(buffer, []byte(p.MetadataMimeType))
	buffer = util.AppendBytes(buffer, []byte(p.MetadataSchemaURI))
	return util.AppendUint64(buffer, p.flags())
}

// unknown flag bits fail the record
func (p *NftProtocol) unpack(u *util.Unpacker) bool {
	p.ProtocolID = u.Uint64()
	p.Name = string(u.Bytes(MaximumProtocolNameLength))
	account.KeyIDFromBytes(&p.OwnerKeyID, u.Fixed(account.KeyIDLength))
	p.RegSign = RegSign(u.Uint64())
	p.MetadataMimeType = string(u.Bytes(MaximumMimeTypeLength))
	p.MetadataSchemaURI = string(u.Bytes(MaximumSchemaURILength))
	f := u.Uint64()
	p.Transferable = 0 != f&flagTransferable
	p.Immutable = 0 != f&flagImmutable
	p.MetadataEmbedded = 0 != f&flagMetadataEmbedded
	return 0 == f&^flagMask
}

func (r *ProtoRegTx) packUnsigned() []byte {
	buffer := make([]byte, 0, 128+len(r.Protocol.MetadataSchemaURI))
	buffer = util.AppendUint64(buffer, r.Version)
	return r.Protocol.pack(buffer)
}

// Pack - canonical serialisation
func (r *ProtoRegTx) Pack() []byte {
	return util.AppendBytes(r.packUnsigned(), r.Signature)
}

// Unpack - decode a serialised payload
//
// the whole buffer must be consumed
func (r *ProtoRegTx) Unpack(buffer []byte) error {
	u := util.NewUnpacker(buffer)

	reg := ProtoRegTx{}
	reg.Version = u.Uint64()
	flagsOK := reg.Protocol.unpack(u)
	reg.Signature = u.Bytes(account.SignatureLength)

	if err := u.Done(); nil != err {
		return err
	}
	if !flagsOK {
		return fault.ErrBadPayload
	}
	*r = reg
	return nil
}

// SignatureHash - hash of the payload without its signature
func (r *ProtoRegTx) SignatureHash() merkle.Digest {
	return merkle.NewDigest(r.packUnsigned())
}

// Sign - fill the signature using the protocol owner's key
func (r *ProtoRegTx) Sign(key *account.PrivateKey) {
	r.Signature = key.Sign(r.SignatureHash())
}

// ProtocolIndex - a registered protocol and where it was confirmed
//
// the zero value is the not found result
type ProtocolIndex struct {
	Protocol  NftProtocol
	RegTxHash merkle.Digest
	Block     blockrecord.Index
}

// NewProtocolIndex - index entry for a protocol confirmed in a block
func NewProtocolIndex(protocol *NftProtocol, txHash merkle.Digest, block *blockrecord.Index) ProtocolIndex {
	return ProtocolIndex{
		Protocol:  *protocol,
		RegTxHash: txHash,
		Block:     *block,
	}
}

// IsNull - true for the not found value
func (i ProtocolIndex) IsNull() bool {
	return i.RegTxHash.IsZero()
}

// Pack - storage form
func (i ProtocolIndex) Pack() []byte {
	buffer := make([]byte, 0, 256)
	buffer = append(buffer, i.RegTxHash[:]...)
	buffer = append(buffer, i.Block.Hash[:]...)
	buffer = util.AppendUint64(buffer, i.Block.Height)
	buffer = util.AppendUint64(buffer, i.Block.Time)
	return i.Protocol.pack(buffer)
}

// UnpackProtocolIndex - decode the storage form
func UnpackProtocolIndex(buffer []byte) (ProtocolIndex, error) {
	u := util.NewUnpacker(buffer)

	i := ProtocolIndex{}
	merkle.DigestFromBytes(&i.RegTxHash, u.Fixed(merkle.DigestLength))
	merkle.DigestFromBytes(&i.Block.Hash, u.Fixed(merkle.DigestLength))
	i.Block.Height = u.Uint64()
	i.Block.Time = u.Uint64()
	flagsOK := i.Protocol.unpack(u)

	if err := u.Done(); nil != err {
		return ProtocolIndex{}, err
	}
	if !flagsOK {
		return ProtocolIndex{}, fault.ErrBadPayload
	}
	return i, nil
}
