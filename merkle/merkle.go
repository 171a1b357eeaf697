// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute the complete tree from a set of transaction ids
//
// structure is:
//   1. N * transaction digests
//   2. level 1..m digests
//   3. merkle root digest
//
// an odd digest at any level is paired with itself
func FullMerkleTree(txIds []Digest) []Digest {
	idCount := len(txIds)

	totalLength := 1
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree[:], txIds)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j
			}
			pair := make([]byte, 0, 2*DigestLength)
			pair = append(pair, tree[j][:]...)
			pair = append(pair, tree[k][:]...)
			tree[n] = NewDigest(pair)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root of a set of transaction ids
//
// a single id is its own root; no ids gives the zero digest
func Root(txIds []Digest) Digest {
	switch len(txIds) {
	case 0:
		return Digest{}
	case 1:
		return txIds[0]
	}
	tree := FullMerkleTree(txIds)
	return tree[len(tree)-1]
}
