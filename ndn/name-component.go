/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/named-data/ndnfib/ndn/tlv"
	"github.com/named-data/ndnfib/ndn/util"
)

// NameComponent represents an NDN name component.
// The value is never mutated after construction.
type NameComponent struct {
	tlvType uint16
	value   []byte
}

// NewBaseNameComponent creates a name component of an arbitrary type.
func NewBaseNameComponent(tlvType uint16, value []byte) NameComponent {
	v := make([]byte, len(value))
	copy(v, value)
	return NameComponent{tlvType: tlvType, value: v}
}

// NewGenericNameComponent creates a new GenericNameComponent.
func NewGenericNameComponent(value []byte) NameComponent {
	return NewBaseNameComponent(tlv.GenericNameComponent, value)
}

// NewSegmentNameComponent creates a new SegmentNameComponent.
func NewSegmentNameComponent(value uint64) NameComponent {
	return NameComponent{tlvType: tlv.SegmentNameComponent, value: tlv.EncodeNNI(value)}
}

// NewByteOffsetNameComponent creates a new ByteOffsetNameComponent.
func NewByteOffsetNameComponent(value uint64) NameComponent {
	return NameComponent{tlvType: tlv.ByteOffsetNameComponent, value: tlv.EncodeNNI(value)}
}

// NewVersionNameComponent creates a new VersionNameComponent.
func NewVersionNameComponent(value uint64) NameComponent {
	return NameComponent{tlvType: tlv.VersionNameComponent, value: tlv.EncodeNNI(value)}
}

// NewTimestampNameComponent creates a new TimestampNameComponent.
func NewTimestampNameComponent(value uint64) NameComponent {
	return NameComponent{tlvType: tlv.TimestampNameComponent, value: tlv.EncodeNNI(value)}
}

// NewSequenceNumNameComponent creates a new SequenceNumNameComponent.
func NewSequenceNumNameComponent(value uint64) NameComponent {
	return NameComponent{tlvType: tlv.SequenceNumNameComponent, value: tlv.EncodeNNI(value)}
}

// DecodeNameComponent decodes a name component from the wire.
func DecodeNameComponent(wire *tlv.Block) (NameComponent, error) {
	if wire == nil {
		return NameComponent{}, util.ErrNonExistent
	}
	if wire.Type() > 0xFFFF || wire.Type() == 0 {
		return NameComponent{}, util.ErrOutOfRange
	}

	c := NewBaseNameComponent(uint16(wire.Type()), wire.Value())
	switch c.tlvType {
	case tlv.ImplicitSha256DigestComponent, tlv.ParametersSha256DigestComponent:
		if len(c.value) != 32 {
			return NameComponent{}, util.ErrDecodeNameComponent
		}
	case tlv.SegmentNameComponent, tlv.ByteOffsetNameComponent, tlv.VersionNameComponent,
		tlv.TimestampNameComponent, tlv.SequenceNumNameComponent:
		if _, err := tlv.DecodeNNI(c.value); err != nil {
			return NameComponent{}, util.ErrDecodeNameComponent
		}
	}
	return c, nil
}

// Type returns the TLV type of the name component.
func (c NameComponent) Type() uint16 {
	return c.tlvType
}

// Value returns the TLV value of the name component.
func (c NameComponent) Value() []byte {
	return c.value
}

// Equals returns whether the two name components match.
func (c NameComponent) Equals(other NameComponent) bool {
	return c.tlvType == other.tlvType && bytes.Equal(c.value, other.value)
}

// Compare returns the canonical order of this component against other:
// TLV type first, then value length, then value bytes.
func (c NameComponent) Compare(other NameComponent) int {
	switch {
	case c.tlvType < other.tlvType:
		return -1
	case c.tlvType > other.tlvType:
		return 1
	case len(c.value) < len(other.value):
		return -1
	case len(c.value) > len(other.value):
		return 1
	}
	return bytes.Compare(c.value, other.value)
}

// Encode encodes the name component into a block.
func (c NameComponent) Encode() *tlv.Block {
	return tlv.NewBlock(uint32(c.tlvType), c.value)
}

func (c NameComponent) String() string {
	switch c.tlvType {
	case tlv.GenericNameComponent:
		return escapeComponent(c.value)
	case tlv.ImplicitSha256DigestComponent:
		return "sha256digest=" + hex.EncodeToString(c.value)
	case tlv.ParametersSha256DigestComponent:
		return "params-sha256=" + hex.EncodeToString(c.value)
	}

	for _, nc := range numericComponents {
		if nc.tlvType != c.tlvType {
			continue
		}
		if v, err := tlv.DecodeNNI(c.value); err == nil {
			return nc.prefix + "=" + strconv.FormatUint(v, 10)
		}
		break
	}
	return strconv.FormatUint(uint64(c.tlvType), 10) + "=" + escapeComponent(c.value)
}

// numericComponents are the typed components whose URI form is "<prefix>=<decimal>".
var numericComponents = []struct {
	tlvType uint16
	prefix  string
	create  func(uint64) NameComponent
}{
	{tlv.SegmentNameComponent, "seg", NewSegmentNameComponent},
	{tlv.ByteOffsetNameComponent, "off", NewByteOffsetNameComponent},
	{tlv.VersionNameComponent, "v", NewVersionNameComponent},
	{tlv.TimestampNameComponent, "t", NewTimestampNameComponent},
	{tlv.SequenceNumNameComponent, "seq", NewSequenceNumNameComponent},
}

// componentFromString parses one URI path segment into a name component.
func componentFromString(str string) (NameComponent, error) {
	typ, val, hasType := strings.Cut(str, "=")
	if !hasType {
		unescaped, err := unescapeComponent(str)
		if err != nil {
			return NameComponent{}, err
		}
		if isAllPeriods(unescaped) {
			if len(unescaped) < 3 {
				return NameComponent{}, errors.New("generic component of fewer than three periods")
			}
			unescaped = unescaped[3:]
		}
		return NewGenericNameComponent(unescaped), nil
	}

	unescaped, err := unescapeComponent(val)
	if err != nil {
		return NameComponent{}, err
	}

	switch typ {
	case "sha256digest", "params-sha256":
		digest, err := hex.DecodeString(string(unescaped))
		if err != nil || len(digest) != 32 {
			return NameComponent{}, errors.New("digest component is not a 32-octet hex string")
		}
		if typ == "sha256digest" {
			return NewBaseNameComponent(tlv.ImplicitSha256DigestComponent, digest), nil
		}
		return NewBaseNameComponent(tlv.ParametersSha256DigestComponent, digest), nil
	}

	for _, nc := range numericComponents {
		if nc.prefix == typ {
			v, err := strconv.ParseUint(string(unescaped), 10, 64)
			if err != nil {
				return NameComponent{}, errors.New(nc.prefix + " component is not a decimal string")
			}
			return nc.create(v), nil
		}
	}

	t, err := strconv.ParseUint(typ, 10, 16)
	if err != nil || t == 0 {
		return NameComponent{}, errors.New("unable to decode component type \"" + typ + "\"")
	}
	return NewBaseNameComponent(uint16(t), unescaped), nil
}

func isAllPeriods(in []byte) bool {
	for _, b := range in {
		if b != '.' {
			return false
		}
	}
	return true
}

func escapeComponent(in []byte) string {
	out := make([]byte, 0, 3*len(in))
	nPeriods := 0
	for _, b := range in {
		switch {
		case b == '.':
			nPeriods++
			out = append(out, b)
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-' || b == '_' || b == '~':
			out = append(out, b)
		default:
			out = append(out, '%', 0, 0)
			hex.Encode(out[len(out)-2:], []byte{b})
		}
	}
	if nPeriods == len(in) {
		// Components made only of periods get three more to stay distinct from "." and "..".
		out = append(out, '.', '.', '.')
	}
	return string(out)
}

func unescapeComponent(in string) ([]byte, error) {
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i] != '%' {
			out = append(out, in[i])
			continue
		}
		if len(in) <= i+2 {
			return nil, errors.New("incomplete escape sequence")
		}
		unescaped, err := hex.DecodeString(in[i+1 : i+3])
		if err != nil {
			return nil, errors.New("could not decode escape sequence")
		}
		out = append(out, unescaped...)
		i += 2
	}
	return out, nil
}
