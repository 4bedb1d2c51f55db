// Package config aggregates every tunable package's Config into one
// struct and loads it from defaults plus an optional YAML overlay, the
// way the multiserver command composed its configuration.
package config

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	"github.com/chrisns/snapmaker-cnc-motion/internal/controller"
	"github.com/chrisns/snapmaker-cnc-motion/internal/executor"
	"github.com/chrisns/snapmaker-cnc-motion/internal/interp"
	"github.com/chrisns/snapmaker-cnc-motion/internal/limits"
)

// Config is the root configuration object for a cncrun invocation.
type Config struct {
	Interp     interp.Config     `koanf:"interp"`
	Controller controller.Config `koanf:"controller"`
	Limits     limits.Config     `koanf:"limits"`
	Serial     executor.SerialConfig `koanf:"serial"`

	// Simulate runs against the in-memory Simulated executor instead
	// of Serial, for dry runs and tests.
	Simulate bool `koanf:"simulate"`

	// EchoPath, if set, writes every executed primitive back out as a
	// G-code line for offline debugging, independent of the executor.
	EchoPath string `koanf:"echo_path"`
}

// Default returns the root config built from each package's own
// defaults.
func Default() Config {
	return Config{
		Interp:     interp.DefaultConfig(),
		Controller: controller.DefaultConfig(),
		Limits:     limits.DefaultConfig(),
		Serial: executor.SerialConfig{
			Port:            "/dev/ttyUSB0",
			Baud:            115200,
			WriteRatePerSec: 50,
		},
		Simulate: true,
	}
}

// Load builds a Config from defaults, then overlays path if it exists.
// A missing file is tolerated; any other read or parse error is
// returned.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	def := Default()

	if err := k.Load(structs.Provider(def, "koanf"), nil); err != nil {
		return Config{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !strings.Contains(err.Error(), "no such file") {
			return Config{}, err
		}
	}

	var out Config
	if err := k.Unmarshal("", &out); err != nil {
		return Config{}, err
	}
	return out, nil
}
