/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"math"

	"github.com/named-data/ndnfib/ndn/util"
)

// Block contains an encoded block.
type Block struct {
	tlvType     uint32
	value       []byte
	subelements []*Block

	wire    []byte
	hasWire bool
}

// NewEmptyBlock creates an empty encoded block.
func NewEmptyBlock(tlvType uint32) *Block {
	return &Block{tlvType: tlvType}
}

// NewBlock creates a block containing the specified type and a copy of value.
func NewBlock(tlvType uint32, value []byte) *Block {
	b := &Block{tlvType: tlvType, value: make([]byte, len(value))}
	copy(b.value, value)
	return b
}

// Type returns the type of the block.
func (b *Block) Type() uint32 {
	return b.tlvType
}

// Value returns the value contained in the block.
func (b *Block) Value() []byte {
	return b.value
}

// Subelements returns the sub-elements of the block.
func (b *Block) Subelements() []*Block {
	return b.subelements
}

// Append appends a subelement onto the end of the block's value.
func (b *Block) Append(block *Block) {
	b.subelements = append(b.subelements, block)
	b.hasWire = false
}

// Parse parses the block value into subelements, if possible.
func (b *Block) Parse() error {
	subelements := make([]*Block, 0)
	for pos := uint64(0); pos < uint64(len(b.value)); {
		block, blockLen, err := DecodeBlock(b.value[pos:])
		if err != nil {
			return err
		}
		subelements = append(subelements, block)
		pos += blockLen
	}
	b.subelements = subelements
	return nil
}

// Wire returns the wire-encoded block.
func (b *Block) Wire() ([]byte, error) {
	if b.hasWire {
		return b.wire, nil
	}

	value := b.value
	if len(b.subelements) > 0 {
		value = make([]byte, 0)
		for _, elem := range b.subelements {
			elemWire, err := elem.Wire()
			if err != nil {
				return nil, err
			}
			value = append(value, elemWire...)
		}
	}

	encodedType := EncodeVarNum(uint64(b.tlvType))
	encodedLength := EncodeVarNum(uint64(len(value)))
	wire := make([]byte, 0, len(encodedType)+len(encodedLength)+len(value))
	wire = append(wire, encodedType...)
	wire = append(wire, encodedLength...)
	wire = append(wire, value...)

	b.wire = wire
	b.hasWire = true
	return b.wire, nil
}

// DecodeBlock decodes a block from the front of wire, returning it along with the number of bytes consumed.
func DecodeBlock(wire []byte) (*Block, uint64, error) {
	tlvType, tlvTypeLen, err := DecodeVarNum(wire)
	if err != nil {
		return nil, 0, err
	}
	if tlvType > math.MaxUint32 {
		return nil, 0, util.ErrOutOfRange
	}
	if tlvTypeLen == len(wire) {
		return nil, 0, ErrMissingLength
	}

	tlvLength, tlvLengthLen, err := DecodeVarNum(wire[tlvTypeLen:])
	if err != nil {
		return nil, 0, err
	}
	headerLen := uint64(tlvTypeLen) + uint64(tlvLengthLen)
	if uint64(len(wire)) < headerLen+tlvLength {
		return nil, 0, ErrBufferTooShort
	}
	totalLen := headerLen + tlvLength

	b := &Block{tlvType: uint32(tlvType)}
	b.value = make([]byte, tlvLength)
	copy(b.value, wire[headerLen:totalLen])
	b.wire = make([]byte, totalLen)
	copy(b.wire, wire[:totalLen])
	b.hasWire = true
	return b, totalLen, nil
}
