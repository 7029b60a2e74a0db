/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table_test

import (
	"testing"

	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	core.ResetConfig()
	assert.Equal(t, table.FibConfig{
		MaxEntries:   table.DefaultMaxEntries,
		MaxFaceLinks: table.DefaultMaxFaceLinks,
	}, table.Configure())

	require.NoError(t, core.LoadConfigString(`
[tables.fib]
max_entries = 4
max_face_links = 8
`))
	defer core.ResetConfig()

	cfg := table.Configure()
	assert.Equal(t, 4, cfg.MaxEntries)
	assert.Equal(t, 8, cfg.MaxFaceLinks)
	assert.Equal(t, 8, table.NewFib(cfg).FreeFaceLinks())
}
