// Package config layers an optional TOML file over the compiled defaults.
// Everything here feeds fixed-size tables built once at startup; there is no
// reload.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/piotrcurious/matrix-rain/constant"
	"github.com/piotrcurious/matrix-rain/rain"
)

type Config struct {
	Columns int `toml:"columns"`
	Rows    int `toml:"rows"`
	FrameMs int `toml:"frame_ms"`

	Serial  SerialConfig  `toml:"serial"`
	Rain    RainConfig    `toml:"rain"`
	Palette PaletteConfig `toml:"palette"`
}

type SerialConfig struct {
	Device         string `toml:"device"`
	Baud           int    `toml:"baud"`
	ReadyTimeoutMs int    `toml:"ready_timeout_ms"`
}

type RainConfig struct {
	MaxDrops        int    `toml:"max_drops"`
	MaxFastDrops    int    `toml:"max_fast_drops"`
	TrailMin        int    `toml:"trail_min"`
	TrailMax        int    `toml:"trail_max"`
	SpeedMin        int    `toml:"speed_min"`
	SpeedMax        int    `toml:"speed_max"`
	SpawnChance     int    `toml:"spawn_chance"`      // out of 256
	FastSpawnChance int    `toml:"fast_spawn_chance"` // out of 256
	BoostFrames     int    `toml:"boost_frames"`
	Glyphs          string `toml:"glyphs"`
}

type PaletteConfig struct {
	// TimeOfDay swaps the color table by hour instead of the fixed green
	TimeOfDay bool `toml:"time_of_day"`
	// UseSystemClock reads the host clock for the hour; otherwise the hour
	// is simulated from run time starting at StartHour
	UseSystemClock bool `toml:"use_system_clock"`
	StartHour      int  `toml:"start_hour"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Columns: constant.Columns,
		Rows:    constant.Rows,
		FrameMs: int(constant.FramePeriod / time.Millisecond),
		Serial: SerialConfig{
			Baud:           constant.BaudRate,
			ReadyTimeoutMs: int(constant.SerialReadyTimeout / time.Millisecond),
		},
		Rain: RainConfig{
			MaxDrops:        constant.MaxDrops,
			MaxFastDrops:    constant.MaxFastDrops,
			TrailMin:        constant.TrailMin,
			TrailMax:        constant.TrailMax,
			SpeedMin:        constant.SpeedMin,
			SpeedMax:        constant.SpeedMax,
			SpawnChance:     constant.DropSpawnChance,
			FastSpawnChance: constant.FastDropSpawnChance,
			BoostFrames:     constant.BoostFrames,
			Glyphs:          constant.Glyphs,
		},
		Palette: PaletteConfig{
			UseSystemClock: true,
			StartHour:      constant.StartHour,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults; a
// named file that is missing or malformed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FramePeriod returns the tick interval, never below 1ms
func (c *Config) FramePeriod() time.Duration {
	if c.FrameMs < 1 {
		return time.Millisecond
	}
	return time.Duration(c.FrameMs) * time.Millisecond
}

// ReadyTimeout returns the bounded serial ready wait
func (c *Config) ReadyTimeout() time.Duration {
	if c.Serial.ReadyTimeoutMs < 0 {
		return 0
	}
	return time.Duration(c.Serial.ReadyTimeoutMs) * time.Millisecond
}

// Params maps the configuration onto simulation tuning. Out-of-range values
// are clamped by the world, not rejected here.
func (c *Config) Params() rain.Params {
	return rain.Params{
		Columns:             c.Columns,
		Rows:                c.Rows,
		MaxDrops:            c.Rain.MaxDrops,
		MaxFastDrops:        c.Rain.MaxFastDrops,
		TrailMin:            c.Rain.TrailMin,
		TrailMax:            c.Rain.TrailMax,
		SpeedMin:            c.Rain.SpeedMin,
		SpeedMax:            c.Rain.SpeedMax,
		DropSpawnChance:     c.Rain.SpawnChance,
		FastDropSpawnChance: c.Rain.FastSpawnChance,
		BoostFrames:         c.Rain.BoostFrames,
		Glyphs:              c.Rain.Glyphs,
	}
}
