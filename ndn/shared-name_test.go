/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"testing"

	"github.com/named-data/ndnfib/ndn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxNames int) *ndn.NameStore {
	store, err := ndn.NewNameStore(ndn.NameStoreConfig{MaxNames: maxNames, BlockSize: 64})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSharedNameRefCount(t *testing.T) {
	store := newTestStore(t, 2)

	sn, err := store.InternString("/a/b")
	require.NoError(t, err)
	assert.Equal(t, 1, sn.RefCount())
	assert.Equal(t, 1, store.InUse())
	assert.Equal(t, "/a/b", sn.Name().String())
	assert.Equal(t, mustName(t, "/a/b").Wire(), sn.Wire())
	assert.Equal(t, mustName(t, "/a/b").Hash(), sn.Hash())

	assert.Same(t, sn, sn.Acquire())
	assert.Equal(t, 2, sn.RefCount())

	sn.Release()
	assert.Equal(t, 1, sn.RefCount())
	assert.Equal(t, 1, store.InUse())

	sn.Release()
	assert.Equal(t, 0, sn.RefCount())
	assert.Equal(t, 0, store.InUse())

	assert.Panics(t, func() { sn.Release() })
}

func TestNameStoreExhaustion(t *testing.T) {
	store := newTestStore(t, 2)

	a, err := store.InternString("/a")
	require.NoError(t, err)
	b, err := store.InternString("/b")
	require.NoError(t, err)

	_, err = store.InternString("/c")
	assert.ErrorIs(t, err, ndn.ErrNameStoreFull)

	a.Release()
	c, err := store.InternString("/c")
	require.NoError(t, err)
	assert.Equal(t, "/c", c.String())

	b.Release()
	c.Release()
	assert.Equal(t, 0, store.InUse())
}

func TestNameStoreTooLong(t *testing.T) {
	store := newTestStore(t, 1)
	_, err := store.InternString("/0123456789/0123456789/0123456789/0123456789/0123456789/0123456789")
	assert.ErrorIs(t, err, ndn.ErrNameTooLong)
	assert.Equal(t, 0, store.InUse())
}

func TestNameStoreFromWire(t *testing.T) {
	store := newTestStore(t, 1)
	wire := append(mustName(t, "/x/y").Wire(), 0xFF, 0xFF)
	sn, err := store.FromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, "/x/y", sn.Name().String())
	assert.Equal(t, len(wire)-2, len(sn.Wire()))
	sn.Release()

	// Non-minimal lengths are stored canonically.
	sn, err = store.FromWire([]byte{0x07, 0xFD, 0x00, 0x03, 0x08, 0x01, 'a'})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x03, 0x08, 0x01, 'a'}, sn.Wire())
	assert.Equal(t, mustName(t, "/a").Hash(), sn.Hash())
	sn.Release()

	_, err = store.FromWire([]byte{0x08, 0x01, 'a'})
	assert.Error(t, err)
	assert.Equal(t, 0, store.InUse())
}
