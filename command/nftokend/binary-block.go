// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/nftokend/block"
	"github.com/bitmark-inc/nftokend/blockrecord"
	"github.com/bitmark-inc/nftokend/fault"
)

// largest record accepted when restoring
const maximumRecordSize = 64 * 1024 * 1024

// save all connected blocks to a file
// record format:
//   big endian record length (n)   8 bytes
//   block data                     n bytes
func saveBinaryBlocks(blocks *block.Manager, filename string) error {

	tip := blocks.Tip()
	if nil == tip {
		return fault.ErrEmptyChain
	}

	fh, err := os.Create(filename)
	if nil != err {
		return err
	}
	defer fh.Close()

	for n := uint64(0); n <= tip.Height; n += 1 {
		if n%100 == 0 {
			fmt.Printf("%d", n)
		} else {
			fmt.Printf(".")
		}
		b, err := blocks.Get(n)
		if nil != err {
			return err
		}
		buffer := b.Pack()

		l := make([]byte, 8)
		binary.BigEndian.PutUint64(l, uint64(len(buffer)))
		if err := writeRecord(fh, l); nil != err {
			return err
		}
		if err := writeRecord(fh, buffer); nil != err {
			return err
		}
	}
	fmt.Printf("\n")
	return nil
}

func writeRecord(fh io.Writer, buffer []byte) error {
	l := len(buffer)
	k, err := fh.Write(buffer)
	if nil != err {
		return err
	}
	if l != k {
		return fmt.Errorf("only wrote: %d of %d", k, l)
	}
	return nil
}

// connect blocks from a file
// record format: (as save above)
//
// returns the number of blocks connected
func restoreBinaryBlocks(blocks *block.Manager, filename string) (int, error) {
	fh, err := os.Open(filename)
	if nil != err {
		return 0, err
	}
	defer fh.Close()

	return connectBinaryBlocks(blocks, fh)
}

func connectBinaryBlocks(blocks *block.Manager, fh io.Reader) (int, error) {
	connected := 0
	for {
		l := make([]byte, 8)
		_, err := io.ReadFull(fh, l)
		if io.EOF == err {
			return connected, nil
		} else if nil != err {
			return connected, err
		}
		size := binary.BigEndian.Uint64(l)
		if size > maximumRecordSize {
			return connected, fault.ErrInvalidBlockHeaderSize
		}

		buffer := make([]byte, size)
		if _, err := io.ReadFull(fh, buffer); nil != err {
			return connected, err
		}

		header, _, _, err := blockrecord.ExtractHeader(buffer)
		if nil != err {
			return connected, err
		}
		if tip := blocks.Tip(); nil != tip && header.Number <= tip.Height {
			continue
		}

		index, err := blocks.ConnectBlock(buffer)
		if nil != err {
			return connected, err
		}
		connected += 1

		if index.Height%100 == 0 {
			fmt.Printf("%d", index.Height)
		} else {
			fmt.Printf(".")
		}
	}
}
