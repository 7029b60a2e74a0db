/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"strconv"
	"sync/atomic"
)

// Type is the kind of link or transport a face runs over.
type Type int

// Face types.
const (
	TypeInternal Type = iota
	TypeEthernet
	TypeUDP
	TypeTCP
	TypeUnix
	TypeWebSocket
)

func (t Type) String() string {
	switch t {
	case TypeInternal:
		return "internal"
	case TypeEthernet:
		return "ether"
	case TypeUDP:
		return "udp"
	case TypeTCP:
		return "tcp"
	case TypeUnix:
		return "unix"
	case TypeWebSocket:
		return "ws"
	default:
		return "unknown"
	}
}

// Face is the forwarder's handle of one endpoint. The face table owns it; the
// FIB refers to it by pointer identity.
type Face struct {
	id          uint64
	faceType    Type
	remoteURI   string
	persistency Persistency
	state       atomic.Int32
}

// NewFace creates a face in the Up state. It gets its ID when added to a Table.
func NewFace(faceType Type, remoteURI string, persistency Persistency) *Face {
	return &Face{faceType: faceType, remoteURI: remoteURI, persistency: persistency}
}

func (f *Face) String() string {
	return "Face(FaceID=" + strconv.FormatUint(f.id, 10) + " " + f.faceType.String() + " " + f.remoteURI + ")"
}

// FaceID returns the ID assigned by the face table, or 0 before it is added.
func (f *Face) FaceID() uint64 {
	return f.id
}

// Type returns the type of the face.
func (f *Face) Type() Type {
	return f.faceType
}

// RemoteURI returns the URI of the remote endpoint.
func (f *Face) RemoteURI() string {
	return f.remoteURI
}

// Persistency returns the persistency of the face.
func (f *Face) Persistency() Persistency {
	return f.persistency
}

// State returns the current state of the face.
func (f *Face) State() State {
	return State(f.state.Load())
}
