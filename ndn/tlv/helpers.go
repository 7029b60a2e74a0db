/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"

	"github.com/named-data/ndnfib/ndn/util"
)

// EncodeVarNum encodes a non-negative integer as a TLV VAR-NUMBER.
func EncodeVarNum(in uint64) []byte {
	switch {
	case in <= 0xFC:
		return []byte{byte(in)}
	case in <= math.MaxUint16:
		out := []byte{0xFD, 0, 0}
		binary.BigEndian.PutUint16(out[1:], uint16(in))
		return out
	case in <= math.MaxUint32:
		out := []byte{0xFE, 0, 0, 0, 0}
		binary.BigEndian.PutUint32(out[1:], uint32(in))
		return out
	default:
		out := make([]byte, 9)
		out[0] = 0xFF
		binary.BigEndian.PutUint64(out[1:], in)
		return out
	}
}

// DecodeVarNum decodes a TLV VAR-NUMBER, returning the value and the number of bytes it occupied.
func DecodeVarNum(in []byte) (uint64, int, error) {
	if len(in) < 1 {
		return 0, 0, util.ErrTooShort
	}

	var size int
	switch in[0] {
	case 0xFD:
		size = 3
	case 0xFE:
		size = 5
	case 0xFF:
		size = 9
	default:
		return uint64(in[0]), 1, nil
	}
	if len(in) < size {
		return 0, 0, util.ErrTooShort
	}

	switch size {
	case 3:
		return uint64(binary.BigEndian.Uint16(in[1:3])), 3, nil
	case 5:
		return uint64(binary.BigEndian.Uint32(in[1:5])), 5, nil
	default:
		return binary.BigEndian.Uint64(in[1:9]), 9, nil
	}
}

// EncodeNNI encodes a non-negative integer value into a TLV value slice.
func EncodeNNI(v uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, v)

	switch {
	case v <= math.MaxUint8:
		return value[7:]
	case v <= math.MaxUint16:
		return value[6:]
	case v <= math.MaxUint32:
		return value[4:]
	}
	return value
}

// DecodeNNI decodes a non-negative integer value from a TLV value slice.
func DecodeNNI(value []byte) (uint64, error) {
	switch len(value) {
	case 1:
		return uint64(value[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(value)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(value)), nil
	case 8:
		return binary.BigEndian.Uint64(value), nil
	case 0:
		return 0, util.ErrTooShort
	}
	if len(value) > 8 {
		return 0, util.ErrTooLong
	}
	return 0, util.ErrOutOfRange
}
