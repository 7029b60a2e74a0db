/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"math"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified TOML file.
func LoadConfig(file string) error {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return fmt.Errorf("unable to load configuration file %s: %w", file, err)
	}
	config = tree
	return nil
}

// LoadConfigString loads the configuration from a TOML document.
func LoadConfigString(doc string) error {
	tree, err := toml.Load(doc)
	if err != nil {
		return fmt.Errorf("unable to parse configuration: %w", err)
	}
	config = tree
	return nil
}

// ResetConfig discards any loaded configuration, so that every lookup returns its default.
func ResetConfig() {
	config = nil
}

func getConfig(key string) interface{} {
	if config == nil {
		return nil
	}
	return config.Get(key)
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	val, ok := getConfig(key).(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	if val, ok := getConfig(key).(string); ok {
		return val
	}
	return def
}
