/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

const noLink int32 = -1

// fibFaceLink binds one face to one FIB entry. Free links have a nil entry
// and are chained through next.
type fibFaceLink struct {
	entry *FibEntry
	face  Face
	prev  int32
	next  int32
}

func (f *Fib) initFaceLinks() {
	for i := range f.links {
		f.links[i] = fibFaceLink{prev: noLink, next: int32(i + 1)}
	}
	if len(f.links) > 0 {
		f.links[len(f.links)-1].next = noLink
		f.freeLink = 0
	} else {
		f.freeLink = noLink
	}
	f.nLinks = 0
}

// FreeFaceLinks returns the number of unbound face links.
func (f *Fib) FreeFaceLinks() int {
	return len(f.links) - f.nLinks
}

func (f *Fib) findFaceLink(entry *FibEntry, face Face) int32 {
	for i := entry.faceHead; i != noLink; i = f.links[i].next {
		if f.links[i].face == face {
			return i
		}
	}
	return noLink
}

// addFace links face to entry. Adding a face the entry already has succeeds
// without using a link. It returns false, without changes, when the pool is empty.
func (f *Fib) addFace(entry *FibEntry, face Face) bool {
	if f.findFaceLink(entry, face) != noLink {
		return true
	}
	if f.freeLink == noLink {
		return false
	}

	i := f.freeLink
	link := &f.links[i]
	f.freeLink = link.next

	link.entry = entry
	link.face = face
	link.prev = entry.faceTail
	link.next = noLink
	if entry.faceTail == noLink {
		entry.faceHead = i
	} else {
		f.links[entry.faceTail].next = i
	}
	entry.faceTail = i
	entry.nFaces++
	f.nLinks++
	return true
}

// releaseFaceLink unlinks a bound link from its entry and returns it to the pool.
func (f *Fib) releaseFaceLink(i int32) {
	link := &f.links[i]
	entry := link.entry

	if link.prev == noLink {
		entry.faceHead = link.next
	} else {
		f.links[link.prev].next = link.next
	}
	if link.next == noLink {
		entry.faceTail = link.prev
	} else {
		f.links[link.next].prev = link.prev
	}
	entry.nFaces--
	f.nLinks--

	*link = fibFaceLink{prev: noLink, next: f.freeLink}
	f.freeLink = i
}
