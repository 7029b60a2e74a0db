/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"strings"

	"github.com/cespare/xxhash"
	"github.com/named-data/ndnfib/ndn/tlv"
	"github.com/named-data/ndnfib/ndn/util"
	"github.com/named-data/ndnfib/utils/comparison"
)

// NameRelation is the hierarchical relationship between two names.
type NameRelation int

// Name relations, read as "receiver is <relation> of other".
const (
	NameLess NameRelation = iota - 2
	NameDescendant
	NameEqual
	NameAncestor
	NameGreater
)

func (r NameRelation) String() string {
	switch r {
	case NameLess:
		return "Less"
	case NameDescendant:
		return "Descendant"
	case NameEqual:
		return "Equal"
	case NameAncestor:
		return "Ancestor"
	case NameGreater:
		return "Greater"
	default:
		return "Unknown"
	}
}

// Name represents an NDN name. A Name is not modified once shared with a table.
type Name struct {
	components   []NameComponent
	cachedString string
}

// NewName constructs an empty name.
func NewName() *Name {
	return new(Name)
}

// NameFromString decodes a name from its URI representation, e.g. "/a/b/v=3".
func NameFromString(str string) (*Name, error) {
	n := new(Name)
	str = strings.TrimPrefix(str, "ndn:")
	str = strings.Trim(str, "/")
	if len(str) == 0 {
		return n, nil
	}

	for _, segment := range strings.Split(str, "/") {
		c, err := componentFromString(segment)
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}
	return n, nil
}

// DecodeName decodes a name from wire encoding.
func DecodeName(b *tlv.Block) (*Name, error) {
	if b == nil {
		return nil, util.ErrNonExistent
	}
	if b.Type() != tlv.Name {
		return nil, tlv.ErrUnexpected
	}
	if len(b.Subelements()) == 0 {
		if err := b.Parse(); err != nil {
			return nil, err
		}
	}

	n := new(Name)
	n.components = make([]NameComponent, 0, len(b.Subelements()))
	for _, elem := range b.Subelements() {
		component, err := DecodeNameComponent(elem)
		if err != nil {
			return nil, err
		}
		n.components = append(n.components, component)
	}
	return n, nil
}

func (n *Name) String() string {
	if len(n.components) == 0 {
		return "/"
	}
	if len(n.cachedString) == 0 {
		var sb strings.Builder
		for _, component := range n.components {
			sb.WriteByte('/')
			sb.WriteString(component.String())
		}
		n.cachedString = sb.String()
	}
	return n.cachedString
}

// Append adds the specified name component to the end of the name.
func (n *Name) Append(component NameComponent) *Name {
	n.components = append(n.components, component)
	n.cachedString = ""
	return n
}

// At returns the name component at the specified index. Negative indices count from the end.
// If out of range, a zero component and false are returned.
func (n *Name) At(index int) (NameComponent, bool) {
	if index < 0 {
		index += len(n.components)
	}
	if index < 0 || index >= len(n.components) {
		return NameComponent{}, false
	}
	return n.components[index], true
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	return len(n.components)
}

// Prefix returns a name made of the first size components. Components are shared, not copied.
func (n *Name) Prefix(size int) *Name {
	size = comparison.Clamp(size, 0, len(n.components))
	prefix := new(Name)
	prefix.components = n.components[:size:size]
	return prefix
}

// Equals returns whether the specified name is equal to this name.
func (n *Name) Equals(other *Name) bool {
	return n.Size() == other.Size() && n.PrefixOf(other)
}

// PrefixOf returns whether this name is a prefix of (or equal to) the specified name.
func (n *Name) PrefixOf(other *Name) bool {
	if other == nil || n.Size() > other.Size() {
		return false
	}
	for i, component := range n.components {
		if !component.Equals(other.components[i]) {
			return false
		}
	}
	return true
}

// Relation classifies this name against other. NameAncestor means this name is a
// strict component-wise prefix of other; NameLess and NameGreater follow the
// canonical order at the first differing component.
func (n *Name) Relation(other *Name) NameRelation {
	common := comparison.Min(n.Size(), other.Size())
	for i := 0; i < common; i++ {
		switch n.components[i].Compare(other.components[i]) {
		case -1:
			return NameLess
		case 1:
			return NameGreater
		}
	}

	switch {
	case n.Size() == other.Size():
		return NameEqual
	case n.Size() < other.Size():
		return NameAncestor
	default:
		return NameDescendant
	}
}

// Compare returns the canonical order of this name against other: -1, 0 or 1.
// An ancestor sorts before its descendants.
func (n *Name) Compare(other *Name) int {
	switch n.Relation(other) {
	case NameLess, NameAncestor:
		return -1
	case NameEqual:
		return 0
	default:
		return 1
	}
}

// Encode encodes the name into a block.
func (n *Name) Encode() *tlv.Block {
	b := tlv.NewEmptyBlock(tlv.Name)
	for _, component := range n.components {
		b.Append(component.Encode())
	}
	return b
}

// Wire returns the TLV wire encoding of the name.
func (n *Name) Wire() []byte {
	// Blocks built from components always encode.
	wire, _ := n.Encode().Wire()
	return wire
}

// Hash returns the xxhash of the name's wire encoding.
func (n *Name) Hash() uint64 {
	return xxhash.Sum64(n.Wire())
}
