/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"github.com/cornelk/hashmap"
)

// FIB measurement keys.
const (
	MeasurementInsert          = "fib.insert"
	MeasurementInsertExhausted = "fib.insert.exhausted"
	MeasurementLookupHit       = "fib.lookup.hit"
	MeasurementLookupMiss      = "fib.lookup.miss"
	MeasurementEntryRemoved    = "fib.entry.removed"
	MeasurementFaceRemoved     = "fib.face.removed"
)

// Measurements is a table of named counters. It may be read while the owner updates it.
type Measurements struct {
	table *hashmap.HashMap
}

// NewMeasurements creates an empty measurements table.
func NewMeasurements() *Measurements {
	return &Measurements{table: hashmap.New(16)}
}

// GetMeasurement returns the measurement table value at the specified key or nil if it does not exist.
func (m *Measurements) GetMeasurement(key string) interface{} {
	value, isOk := m.table.GetStringKey(key)
	if !isOk {
		return nil
	}
	return value
}

// GetMeasurementInt returns the integer value at the specified key, or 0 if unset.
func (m *Measurements) GetMeasurementInt(key string) int {
	value, _ := m.GetMeasurement(key).(int)
	return value
}

// SetMeasurement atomically sets the value of the specified measurement table key only if it is equal to the expected value, returning whether the operation was successful.
func (m *Measurements) SetMeasurement(key string, expected interface{}, value interface{}) bool {
	return m.table.Cas(key, expected, value)
}

// AddToMeasurementInt adds the specified value to the given measurement key, setting as value if unitialized.
func (m *Measurements) AddToMeasurementInt(key string, value int) {
	for wasSet := false; !wasSet; {
		expected := m.GetMeasurement(key)
		if expected != nil {
			wasSet = m.SetMeasurement(key, expected, expected.(int)+value)
		} else {
			// GetOrInsert reports whether the key was already present
			_, loaded := m.table.GetOrInsert(key, value)
			wasSet = !loaded
		}
	}
}

// Snapshot returns a copy of all counters.
func (m *Measurements) Snapshot() map[string]int {
	out := make(map[string]int, m.table.Len())
	for kv := range m.table.Iter() {
		key, ok := kv.Key.(string)
		value, isInt := kv.Value.(int)
		if ok && isInt {
			out[key] = value
		}
	}
	return out
}
