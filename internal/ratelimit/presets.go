package ratelimit

import (
	"fmt"
	"time"
)

// Имена классов операций с предустановленными лимитами
const (
	PresetWrite  = "write"
	PresetToggle = "toggle"
	PresetCreate = "create"
	PresetDelete = "delete"
	PresetFetch  = "fetch"
)

var presets = map[string]Config{
	PresetWrite:  {MaxRequests: 30, Window: time.Minute},
	PresetToggle: {MaxRequests: 60, Window: time.Minute},
	PresetCreate: {MaxRequests: 20, Window: time.Minute},
	PresetDelete: {MaxRequests: 10, Window: time.Minute},
	PresetFetch:  {MaxRequests: 100, Window: time.Minute},
}

// Preset returns the named preset configuration.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown rate limit preset %q", name)
	}
	return cfg, nil
}

// MustPreset is like Preset but panics on an unknown name.
func MustPreset(name string) Config {
	cfg, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Key строит ключ лимита для класса операции и коллекции
func Key(preset, collection string) string {
	return preset + ":" + collection
}
