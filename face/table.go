/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/table"
)

// RouteCleaner drops every route through a face. *table.Fib implements it.
type RouteCleaner interface {
	RemoveFace(face table.Face) int
}

// Table holds all faces used by the forwarder.
//
// Get and GetAll may run concurrently with anything. Add, Remove and SetState
// modify the routes and must be serialized with every other use of them.
type Table struct {
	faces      *hashmap.HashMap
	nextFaceID atomic.Uint64
	routes     RouteCleaner
}

// NewTable creates an empty face table whose faces are withdrawn from routes when they go away.
func NewTable(routes RouteCleaner) *Table {
	t := &Table{faces: hashmap.New(64), routes: routes}
	t.nextFaceID.Store(1)
	return t
}

func (t *Table) String() string {
	return "FaceTable"
}

// Add assigns an ID to the face and registers it.
func (t *Table) Add(face *Face) uint64 {
	face.id = t.nextFaceID.Add(1) - 1
	t.faces.Set(uintptr(face.id), face)
	core.LogDebug(t, "Registered FaceID=", face.id, " type=", face.faceType)
	return face.id
}

// Get gets the face with the specified ID (if any) from the face table.
func (t *Table) Get(id uint64) *Face {
	face, ok := t.faces.GetUintKey(uintptr(id))
	if !ok {
		return nil
	}
	return face.(*Face)
}

// GetByURI gets the face with the specified remote URI (if any) from the face table.
func (t *Table) GetByURI(remoteURI string) *Face {
	for kv := range t.faces.Iter() {
		if face := kv.Value.(*Face); face.remoteURI == remoteURI {
			return face
		}
	}
	return nil
}

// GetAll returns all faces.
func (t *Table) GetAll() []*Face {
	faces := make([]*Face, 0, t.faces.Len())
	for kv := range t.faces.Iter() {
		faces = append(faces, kv.Value.(*Face))
	}
	return faces
}

// Len returns the number of registered faces.
func (t *Table) Len() int {
	return t.faces.Len()
}

// Remove removes a face from the face table and all routes through it.
// A face still Up is marked Down; any other state is kept.
func (t *Table) Remove(id uint64) {
	face := t.Get(id)
	if face == nil {
		return
	}
	t.faces.Del(uintptr(id))
	face.state.CompareAndSwap(int32(Up), int32(Down))
	routes := t.routes.RemoveFace(face)
	core.LogDebug(t, "Unregistered FaceID=", id, " routes=", routes)
}

// SetState changes the state of a face. A face leaving Up loses all its routes;
// an on-demand face is also removed from the table.
func (t *Table) SetState(id uint64, state State) {
	face := t.Get(id)
	if face == nil {
		return
	}
	prev := State(face.state.Swap(int32(state)))
	if prev != Up || state == Up {
		return
	}

	core.LogInfo(t, "FaceID=", id, " went ", state)
	if face.persistency == PersistencyOnDemand {
		t.Remove(id)
		return
	}
	t.routes.RemoveFace(face)
}
