/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Link512/stealthpool"
	"github.com/cespare/xxhash"
	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/ndn/tlv"
)

// NameStore errors.
var (
	ErrNameTooLong   = errors.New("name wire encoding exceeds name store block size")
	ErrNameStoreFull = errors.New("name store has no free block")
)

// Name store limits and defaults.
const (
	DefaultMaxNames  = 2048
	DefaultBlockSize = 8800
)

// NameStoreConfig contains NameStore configuration.
type NameStoreConfig struct {
	MaxNames  int // Number of preallocated buffers.
	BlockSize int // Size of each buffer; bounds the wire length of a stored name.
}

// NameStoreConfigFromCore reads the tables.names section of the loaded configuration.
func NameStoreConfigFromCore() NameStoreConfig {
	return NameStoreConfig{
		MaxNames:  core.GetConfigIntDefault("tables.names.max_names", DefaultMaxNames),
		BlockSize: core.GetConfigIntDefault("tables.names.block_size", DefaultBlockSize),
	}
}

// NameStore holds the wire encodings of shared names in a fixed set of
// off-heap buffers. A buffer is returned to the store when the last reference
// to its SharedName is released.
type NameStore struct {
	pool      *stealthpool.Pool
	blockSize int
	inUse     atomic.Int32
}

// NewNameStore preallocates the buffers of a name store.
func NewNameStore(cfg NameStoreConfig) (*NameStore, error) {
	if cfg.MaxNames <= 0 {
		cfg.MaxNames = DefaultMaxNames
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	pool, err := stealthpool.New(cfg.MaxNames, stealthpool.WithBlockSize(cfg.BlockSize))
	if err != nil {
		return nil, fmt.Errorf("unable to allocate name store: %w", err)
	}
	return &NameStore{pool: pool, blockSize: cfg.BlockSize}, nil
}

func (s *NameStore) String() string {
	return "NameStore"
}

// Close frees the store's buffers. Names still referenced must not be used afterwards.
func (s *NameStore) Close() error {
	return s.pool.Close()
}

// InUse returns the number of buffers currently holding a name.
func (s *NameStore) InUse() int {
	return int(s.inUse.Load())
}

// Intern copies the wire encoding of name into a store buffer and returns a
// SharedName holding one reference, owned by the caller.
func (s *NameStore) Intern(name *Name) (*SharedName, error) {
	return s.store(name.Wire())
}

// InternString parses a name URI and interns it.
func (s *NameStore) InternString(uri string) (*SharedName, error) {
	name, err := NameFromString(uri)
	if err != nil {
		return nil, err
	}
	return s.Intern(name)
}

// FromWire interns the name found at the front of a TLV wire buffer. The
// store keeps the canonical encoding, so non-minimal VAR-NUMBERs in wire are
// not preserved.
func (s *NameStore) FromWire(wire []byte) (*SharedName, error) {
	block, _, err := tlv.DecodeBlock(wire)
	if err != nil {
		return nil, err
	}
	name, err := DecodeName(block)
	if err != nil {
		return nil, err
	}
	return s.Intern(name)
}

func (s *NameStore) store(wire []byte) (*SharedName, error) {
	if len(wire) > s.blockSize {
		return nil, ErrNameTooLong
	}
	buf, err := s.pool.Get()
	if err != nil {
		core.LogDebug(s, "Unable to obtain buffer: ", err)
		return nil, ErrNameStoreFull
	}
	n := copy(buf, wire)

	sn := &SharedName{store: s, buf: buf, wire: buf[:n:n]}
	block, _, err := tlv.DecodeBlock(sn.wire)
	if err == nil {
		sn.name, err = DecodeName(block)
	}
	if err != nil {
		s.pool.Return(buf)
		return nil, err
	}
	sn.hash = xxhash.Sum64(sn.wire)
	sn.refs.Store(1)
	s.inUse.Add(1)
	return sn, nil
}

func (s *NameStore) release(sn *SharedName) {
	if err := s.pool.Return(sn.buf); err != nil {
		core.LogWarn(s, "Unable to return buffer of ", sn.name, ": ", err)
	}
	s.inUse.Add(-1)
}

// SharedName is an immutable, reference-counted name whose wire encoding lives in a NameStore buffer.
type SharedName struct {
	store *NameStore
	buf   []byte
	wire  []byte
	name  *Name
	hash  uint64
	refs  atomic.Int32
}

// Name returns the decoded name. It must not be modified.
func (sn *SharedName) Name() *Name {
	return sn.name
}

// Wire returns the TLV wire encoding held in the store buffer. It must not be modified.
func (sn *SharedName) Wire() []byte {
	return sn.wire
}

// Hash returns the xxhash of the wire encoding, equal to Name().Hash().
func (sn *SharedName) Hash() uint64 {
	return sn.hash
}

// RefCount returns the number of outstanding references.
func (sn *SharedName) RefCount() int {
	return int(sn.refs.Load())
}

// Acquire adds a reference and returns the same SharedName for the new owner.
func (sn *SharedName) Acquire() *SharedName {
	if sn.refs.Add(1) <= 1 {
		panic("ndn: Acquire on released SharedName " + sn.name.String())
	}
	return sn
}

// Release drops a reference. The buffer goes back to the store with the last one.
func (sn *SharedName) Release() {
	refs := sn.refs.Add(-1)
	switch {
	case refs == 0:
		sn.store.release(sn)
	case refs < 0:
		panic("ndn: Release on released SharedName " + sn.name.String())
	}
}

func (sn *SharedName) String() string {
	return sn.name.String()
}
