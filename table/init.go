/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"github.com/named-data/ndnfib/core"
	"github.com/named-data/ndnfib/utils/comparison"
)

// FIB limits and defaults.
const (
	MinEntries        = 1
	MaxEntriesLimit   = 1 << 20
	DefaultMaxEntries = 1024

	MinFaceLinks        = 1
	MaxFaceLinksLimit   = 1 << 22
	DefaultMaxFaceLinks = 4096
)

// FibConfig contains FIB capacities, fixed for the lifetime of a Fib.
type FibConfig struct {
	MaxEntries   int // Number of entry slots.
	MaxFaceLinks int // Number of (entry, face) associations across all entries.
}

// ApplyDefaults replaces zero values with defaults and clamps the rest into range.
func (cfg *FibConfig) ApplyDefaults() {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	} else {
		cfg.MaxEntries = comparison.Clamp(cfg.MaxEntries, MinEntries, MaxEntriesLimit)
	}

	if cfg.MaxFaceLinks == 0 {
		cfg.MaxFaceLinks = DefaultMaxFaceLinks
	} else {
		cfg.MaxFaceLinks = comparison.Clamp(cfg.MaxFaceLinks, MinFaceLinks, MaxFaceLinksLimit)
	}
}

// Configure reads the FIB capacities from the tables.fib section of the loaded configuration.
func Configure() FibConfig {
	cfg := FibConfig{
		MaxEntries:   core.GetConfigIntDefault("tables.fib.max_entries", DefaultMaxEntries),
		MaxFaceLinks: core.GetConfigIntDefault("tables.fib.max_face_links", DefaultMaxFaceLinks),
	}
	cfg.ApplyDefaults()
	core.LogDebug("Tables", "FIB MaxEntries=", cfg.MaxEntries, " MaxFaceLinks=", cfg.MaxFaceLinks)
	return cfg
}
