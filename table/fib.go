/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"errors"
	"strconv"

	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/ndn"
)

// ErrResourceExhausted is returned when the FIB has no free entry slot or face link.
var ErrResourceExhausted = errors.New("FIB resources exhausted")

// Face is the handle of an outgoing face, as referenced by FIB entries.
// Faces are compared by identity (==), so implementations must be comparable;
// pointer types are the norm.
type Face interface {
	FaceID() uint64
}

// FibEntry is one slot of the FIB. A slot is free when it holds no prefix.
type FibEntry struct {
	fib   *Fib
	index int32

	prefix       *ndn.SharedName
	prefixLength int
	prefixHash   uint64

	// faces is an intrusive list of face link indices.
	faceHead int32
	faceTail int32
	nFaces   int
}

// Fib is a Forwarding Information Base with a fixed number of entries and face links.
//
// A Fib has no internal locking: callers must serialize every call.
// Entries returned by lookups are valid until the next Insert, RemoveEntry,
// RemoveFace or Reset.
type Fib struct {
	config  FibConfig
	entries []FibEntry
	links   []fibFaceLink

	freeLink int32
	nEntries int
	nLinks   int

	// propagation targets of the Insert in progress, preallocated to MaxEntries.
	targets []*FibEntry

	measurements *Measurements
}

// NewFib creates a FIB with all entries and face links free.
func NewFib(config FibConfig) *Fib {
	config.ApplyDefaults()
	f := &Fib{
		config:       config,
		entries:      make([]FibEntry, config.MaxEntries),
		links:        make([]fibFaceLink, config.MaxFaceLinks),
		targets:      make([]*FibEntry, 0, config.MaxEntries),
		measurements: NewMeasurements(),
	}
	for i := range f.entries {
		f.entries[i].fib = f
		f.entries[i].index = int32(i)
	}
	f.resetSlots()
	core.LogDebug(f, "Created with MaxEntries=", config.MaxEntries, " MaxFaceLinks=", config.MaxFaceLinks)
	return f
}

func (f *Fib) String() string {
	return "FIB"
}

// Reset returns the FIB to its initial state, releasing every held prefix.
func (f *Fib) Reset() {
	for i := range f.entries {
		if f.entries[i].prefix != nil {
			f.entries[i].prefix.Release()
		}
	}
	f.resetSlots()
}

func (f *Fib) resetSlots() {
	for i := range f.entries {
		f.entries[i].clear()
	}
	f.initFaceLinks()
	f.nEntries = 0
	f.targets = f.targets[:0]
}

// Config returns the effective configuration of the FIB.
func (f *Fib) Config() FibConfig {
	return f.config
}

// Measurements returns the FIB's counters.
func (f *Fib) Measurements() *Measurements {
	return f.measurements
}

// Len returns the number of live entries.
func (f *Fib) Len() int {
	return f.nEntries
}

// FaceLinksInUse returns the number of face links bound to entries.
func (f *Fib) FaceLinksInUse() int {
	return f.nLinks
}

// Lookup returns the live entry whose prefix is the longest prefix of name
// (an equal prefix included), or nil if none matches. Among entries of equal
// length, the first in table order wins.
func (f *Fib) Lookup(name *ndn.Name) *FibEntry {
	var best *FibEntry
	for i := range f.entries {
		entry := &f.entries[i]
		if entry.prefix == nil || entry.prefixLength > name.Size() {
			continue
		}
		if best != nil && entry.prefixLength <= best.prefixLength {
			continue
		}
		switch entry.prefix.Name().Relation(name) {
		case ndn.NameEqual, ndn.NameAncestor:
			best = entry
		}
	}

	if best == nil {
		f.measurements.AddToMeasurementInt(MeasurementLookupMiss, 1)
	} else {
		f.measurements.AddToMeasurementInt(MeasurementLookupHit, 1)
	}
	return best
}

// FindExactMatch returns the live entry whose prefix equals name, or nil.
func (f *Fib) FindExactMatch(name *ndn.Name) *FibEntry {
	hash := name.Hash()
	for i := range f.entries {
		entry := &f.entries[i]
		if entry.prefix != nil && entry.prefixHash == hash && entry.prefix.Name().Equals(name) {
			return entry
		}
	}
	return nil
}

// GetAllEntries returns all live entries in table order.
func (f *Fib) GetAllEntries() []*FibEntry {
	entries := make([]*FibEntry, 0, f.nEntries)
	for i := range f.entries {
		if f.entries[i].prefix != nil {
			entries = append(entries, &f.entries[i])
		}
	}
	return entries
}

// RemoveEntry retires an entry: its face links return to the pool, its prefix
// reference is released and its slot becomes free. Entries that are already
// free or belong to another FIB are ignored.
func (f *Fib) RemoveEntry(entry *FibEntry) {
	if entry == nil || entry.fib != f || entry.prefix == nil {
		return
	}

	core.LogTrace(f, "Removing entry prefix=", entry.prefix, " faces=", entry.nFaces)
	for entry.faceHead != noLink {
		f.releaseFaceLink(entry.faceHead)
	}
	entry.prefix.Release()
	entry.clear()
	f.nEntries--
	f.measurements.AddToMeasurementInt(MeasurementEntryRemoved, 1)
}

// RemoveFace removes face from every entry. Entries left without any face are
// retired. It returns the number of face links removed; zero means the face
// was not in the FIB.
func (f *Fib) RemoveFace(face Face) int {
	removed := 0
	for i := range f.entries {
		entry := &f.entries[i]
		if entry.prefix == nil {
			continue
		}
		if link := f.findFaceLink(entry, face); link != noLink {
			f.releaseFaceLink(link)
			removed++
			if entry.nFaces == 0 {
				f.RemoveEntry(entry)
			}
		}
	}

	if removed > 0 {
		core.LogDebug(f, "Removed FaceID=", face.FaceID(), " from ", removed, " entries")
		f.measurements.AddToMeasurementInt(MeasurementFaceRemoved, removed)
	}
	return removed
}

func (e *FibEntry) clear() {
	e.prefix = nil
	e.prefixLength = 0
	e.prefixHash = 0
	e.faceHead = noLink
	e.faceTail = noLink
	e.nFaces = 0
}

// Prefix returns the name prefix of the entry. It must not be modified.
func (e *FibEntry) Prefix() *ndn.Name {
	if e.prefix == nil {
		return nil
	}
	return e.prefix.Name()
}

// SharedPrefix returns the shared name held by the entry, without adding a reference.
func (e *FibEntry) SharedPrefix() *ndn.SharedName {
	return e.prefix
}

// PrefixLength returns the number of components of the prefix.
func (e *FibEntry) PrefixLength() int {
	return e.prefixLength
}

// NumFaces returns the number of faces of the entry.
func (e *FibEntry) NumFaces() int {
	return e.nFaces
}

// Faces returns the faces of the entry in the order they were added.
func (e *FibEntry) Faces() []Face {
	faces := make([]Face, 0, e.nFaces)
	e.ForEachFace(func(face Face) {
		faces = append(faces, face)
	})
	return faces
}

// ForEachFace calls fn for each face of the entry, in the order they were added.
// fn must not modify the FIB.
func (e *FibEntry) ForEachFace(fn func(face Face)) {
	for i := e.faceHead; i != noLink; i = e.fib.links[i].next {
		fn(e.fib.links[i].face)
	}
}

// HasFace returns whether face is one of the entry's faces.
func (e *FibEntry) HasFace(face Face) bool {
	return e.fib.findFaceLink(e, face) != noLink
}

func (e *FibEntry) String() string {
	if e.prefix == nil {
		return "FibEntry(free)"
	}
	out := "FibEntry(" + e.prefix.String() + " faces="
	first := true
	e.ForEachFace(func(face Face) {
		if !first {
			out += ","
		}
		first = false
		out += strconv.FormatUint(face.FaceID(), 10)
	})
	return out + ")"
}
