// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nftoken

import (
	"github.com/bitmark-inc/nftokend/account"
	"github.com/bitmark-inc/nftokend/fault"
)

// default protocol settings
const (
	DefaultRegSign          = SignByCreator
	DefaultMetadataMimeType = "text/plain"
)

// ProtoRegTxBuilder - assemble a protocol registration payload
//
// the first error is kept and returned by Build
type ProtoRegTxBuilder struct {
	reg ProtoRegTx
	err error
}

// NewProtoRegTxBuilder - start a payload with the default settings
func NewProtoRegTxBuilder() *ProtoRegTxBuilder {
	return &ProtoRegTxBuilder{
		reg: ProtoRegTx{
			Version: CurrentVersion,
			Protocol: NftProtocol{
				RegSign:          DefaultRegSign,
				MetadataMimeType: DefaultMetadataMimeType,
				Transferable:     true,
				Immutable:        true,
			},
		},
	}
}

// SetTokenProtocol - protocol symbol
func (b *ProtoRegTxBuilder) SetTokenProtocol(symbol string) *ProtoRegTxBuilder {
	if nil == b.err {
		b.reg.Protocol.ProtocolID, b.err = ParseProtocolName(symbol)
	}
	return b
}

// SetTokenProtocolName - full readable name
func (b *ProtoRegTxBuilder) SetTokenProtocolName(name string) *ProtoRegTxBuilder {
	if nil == b.err {
		if !ValidProtocolFullName(name) {
			b.err = fault.ErrInvalidProtocolFullName
			return b
		}
		b.reg.Protocol.Name = name
	}
	return b
}

// SetTokenProtocolOwnerKey - owner taken from the signing key
func (b *ProtoRegTxBuilder) SetTokenProtocolOwnerKey(key *account.PrivateKey) *ProtoRegTxBuilder {
	if nil == b.err {
		if nil == key {
			b.err = fault.ErrMissingPrivateKey
			return b
		}
		b.reg.Protocol.OwnerKeyID = key.KeyID()
	}
	return b
}

// SetNftRegSign - who signs token registrations
func (b *ProtoRegTxBuilder) SetNftRegSign(s RegSign) *ProtoRegTxBuilder {
	if nil == b.err {
		if !s.IsValid() {
			b.err = fault.ErrInvalidRegSign
			return b
		}
		b.reg.Protocol.RegSign = s
	}
	return b
}

// SetMetadataMimeType - content type of token metadata
func (b *ProtoRegTxBuilder) SetMetadataMimeType(mimeType string) *ProtoRegTxBuilder {
	if nil == b.err {
		if len(mimeType) > MaximumMimeTypeLength {
			b.err = fault.ErrFieldTooLong
			return b
		}
		b.reg.Protocol.MetadataMimeType = mimeType
	}
	return b
}

// SetMetadataSchemaURI - schema describing token metadata
func (b *ProtoRegTxBuilder) SetMetadataSchemaURI(uri string) *ProtoRegTxBuilder {
	if nil == b.err {
		if len(uri) > MaximumSchemaURILength {
			b.err = fault.ErrFieldTooLong
			return b
		}
		b.reg.Protocol.MetadataSchemaURI = uri
	}
	return b
}

// SetIsTokenTransferable - tokens may change owner
func (b *ProtoRegTxBuilder) SetIsTokenTransferable(flag bool) *ProtoRegTxBuilder {
	b.reg.Protocol.Transferable = flag
	return b
}

// SetIsTokenImmutable - token ids never change
func (b *ProtoRegTxBuilder) SetIsTokenImmutable(flag bool) *ProtoRegTxBuilder {
	b.reg.Protocol.Immutable = flag
	return b
}

// SetIsMetadataEmbedded - metadata holds the data rather than a URI
func (b *ProtoRegTxBuilder) SetIsMetadataEmbedded(flag bool) *ProtoRegTxBuilder {
	b.reg.Protocol.MetadataEmbedded = flag
	return b
}

// Build - the unsigned payload
func (b *ProtoRegTxBuilder) Build() (*ProtoRegTx, error) {
	if nil != b.err {
		return nil, b.err
	}
	if UnknownProtocol == b.reg.Protocol.ProtocolID || "" == b.reg.Protocol.Name || b.reg.Protocol.OwnerKeyID.IsNull() {
		return nil, fault.ErrMissingParameters
	}
	reg := b.reg
	return &reg, nil
}

// ValidProtocolFullName - length limits of the readable name
func ValidProtocolFullName(name string) bool {
	return len(name) >= MinimumProtocolNameLength && len(name) <= MaximumProtocolNameLength
}
