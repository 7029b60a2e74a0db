/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"fmt"

	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/ndn"
)

// Insert adds face to the route for prefix.
//
// The face is also added to every existing entry below prefix, and a newly
// created entry inherits all faces of its longest existing ancestor, so every
// entry holds the faces of all its ancestors.
//
// On success the caller's reference to prefix is consumed: it is either kept
// by a new entry or released because an entry for prefix already exists.
// Insert is all-or-nothing: if the entry table or the face link pool cannot
// hold the result, it returns an error wrapping ErrResourceExhausted, changes
// nothing, and the caller still owns its reference.
func (f *Fib) Insert(prefix *ndn.SharedName, face Face) error {
	name := prefix.Name()

	var free, match, parent *FibEntry
	targets := f.targets[:0]

	for i := range f.entries {
		entry := &f.entries[i]
		if entry.prefix == nil {
			if free == nil {
				free = entry
			}
			continue
		}

		switch name.Relation(entry.prefix.Name()) {
		case ndn.NameEqual:
			match = entry
			targets = append(targets, entry)
		case ndn.NameAncestor:
			// entry is below prefix and must carry the new face too
			targets = append(targets, entry)
		case ndn.NameDescendant:
			if parent == nil || entry.prefixLength > parent.prefixLength {
				parent = entry
			}
		}
	}

	needLinks := 0
	for _, entry := range targets {
		if !entry.HasFace(face) {
			needLinks++
		}
	}
	if match == nil {
		if free == nil {
			return f.exhausted(name, "no free entry")
		}
		needLinks++
		if parent != nil {
			needLinks += parent.nFaces
			if parent.HasFace(face) {
				needLinks--
			}
		}
	}
	if needLinks > f.FreeFaceLinks() {
		return f.exhausted(name, fmt.Sprintf("needs %d face links, %d free", needLinks, f.FreeFaceLinks()))
	}

	for _, entry := range targets {
		if !f.addFace(entry, face) {
			return f.exhausted(name, "face link pool drained while propagating")
		}
	}
	f.measurements.AddToMeasurementInt(MeasurementInsert, 1)

	if match != nil {
		core.LogTrace(f, "Added FaceID=", face.FaceID(), " to existing prefix=", name)
		prefix.Release()
		return nil
	}

	free.prefix = prefix
	free.prefixLength = name.Size()
	free.prefixHash = prefix.Hash()
	f.nEntries++

	ok := f.addFace(free, face)
	if ok && parent != nil {
		for i := parent.faceHead; ok && i != noLink; i = f.links[i].next {
			ok = f.addFace(free, f.links[i].face)
		}
	}
	if !ok {
		// A new entry never exists without all faces of its parent.
		free.prefix.Acquire()
		f.RemoveEntry(free)
		return f.exhausted(name, "face link pool drained while inheriting")
	}

	core.LogDebug(f, "Created entry prefix=", name, " FaceID=", face.FaceID(), " faces=", free.nFaces)
	return nil
}

func (f *Fib) exhausted(name *ndn.Name, reason string) error {
	f.measurements.AddToMeasurementInt(MeasurementInsertExhausted, 1)
	core.LogDebug(f, "Unable to insert prefix=", name, ": ", reason)
	return fmt.Errorf("insert %s: %s: %w", name, reason, ErrResourceExhausted)
}
