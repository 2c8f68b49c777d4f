package marquee

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds the settings of a marquee Engine. Start from DefaultConfig;
// the zero value is not usable (zero speed never animates).
type Config struct {
	// Speed is the base rate in pixels per second.
	Speed float64 `json:"speed"`
	// SpeedFactor multiplies Speed through the timeline's playback rate.
	// Only its magnitude is used; travel direction comes from Direction.
	SpeedFactor float64 `json:"speedFactor"`
	// Direction of travel, 1 (left) or -1 (right).
	Direction Direction `json:"direction"`
	// Autoplay starts playback at the end of Initialize. Set it to false for
	// manual control through Play.
	Autoplay bool `json:"autoplay"`
	// ReducedMotion disables the timeline entirely and pins the strip at rest.
	ReducedMotion bool `json:"reducedMotion"`
	// AutoClone lets the engine create the tiling copies of the content.
	// Disable it to manage tiling yourself.
	AutoClone bool `json:"autoClone"`
	// ApplyStyles lets the engine lay the strip out left to right and size the
	// container to the tiled width. Disable it to own container layout.
	ApplyStyles bool `json:"applyStyles"`
}

// DefaultConfig returns the defaults: 100 px/s, factor 1, leftward travel,
// autoplay, tiling and layout on, reduced motion from the user's preference.
func DefaultConfig() Config {
	return Config{
		Speed:         100,
		SpeedFactor:   1,
		Direction:     DirectionLeft,
		Autoplay:      true,
		ReducedMotion: PrefersReducedMotion(),
		AutoClone:     true,
		ApplyStyles:   true,
	}
}

// LoadConfig overlays JSON data on DefaultConfig and validates the result.
// Keys missing from data keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a JSON config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first setting that cannot drive an engine.
func (c Config) Validate() error {
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		return fmt.Errorf("config: speed must be a finite value >= 0, got %v", c.Speed)
	}
	if math.IsNaN(c.SpeedFactor) || math.IsInf(c.SpeedFactor, 0) {
		return fmt.Errorf("config: speedFactor must be finite, got %v", c.SpeedFactor)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("config: direction must be 1 or -1, got %d", c.Direction)
	}
	return nil
}

// reducedMotionEnv lists the environment variables consulted, in order, for
// the user's reduced-motion preference.
var reducedMotionEnv = []string{"MARQUEE_REDUCED_MOTION", "REDUCE_MOTION"}

// PrefersReducedMotion reports the user's reduced-motion preference as set in
// the environment. Accepts any strconv.ParseBool value plus "reduce".
func PrefersReducedMotion() bool {
	for _, key := range reducedMotionEnv {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "reduce" {
			return true
		}
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return false
}
