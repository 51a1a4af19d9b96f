package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML settings file. Every field has a
// working default; the file only overrides. Timeouts are integer
// milliseconds.
type Settings struct {
	MaxSteps  int  `yaml:"max_steps"`
	UseVision bool `yaml:"use_vision"`

	Detection DetectionSettings `yaml:"detection"`
	Cache     CacheSettings     `yaml:"cache"`

	// NoRefreshActions overrides the set of actions after which the
	// desktop state is deliberately not refreshed. The default set is
	// tuned against observed Windows focus behavior; revisit it before
	// targeting another accessibility model.
	NoRefreshActions []string `yaml:"no_refresh_actions"`
}

type DetectionSettings struct {
	MaxDepth        int      `yaml:"max_depth"`
	MaxVisited      int      `yaml:"max_visited"`
	MaxInteractive  int      `yaml:"max_interactive"`
	Workers         int      `yaml:"workers"`
	WindowTimeoutMs int      `yaml:"window_timeout_ms"`
	BatchTimeoutMs  int      `yaml:"batch_timeout_ms"`
	ExcludedApps    []string `yaml:"excluded_apps"`
}

type CacheSettings struct {
	AppsTTLMs       int `yaml:"apps_ttl_ms"`
	ScreenshotTTLMs int `yaml:"screenshot_ttl_ms"`
	TreeTTLMs       int `yaml:"tree_ttl_ms"`
}

func (d DetectionSettings) WindowTimeout() time.Duration {
	return time.Duration(d.WindowTimeoutMs) * time.Millisecond
}

func (d DetectionSettings) BatchTimeout() time.Duration {
	return time.Duration(d.BatchTimeoutMs) * time.Millisecond
}

func (c CacheSettings) AppsTTL() time.Duration {
	return time.Duration(c.AppsTTLMs) * time.Millisecond
}

func (c CacheSettings) ScreenshotTTL() time.Duration {
	return time.Duration(c.ScreenshotTTLMs) * time.Millisecond
}

func (c CacheSettings) TreeTTL() time.Duration {
	return time.Duration(c.TreeTTLMs) * time.Millisecond
}

func Default() Settings {
	return Settings{
		MaxSteps: 25,
		Detection: DetectionSettings{
			MaxDepth:        30,
			MaxVisited:      10000,
			MaxInteractive:  500,
			Workers:         6,
			WindowTimeoutMs: 2000,
			BatchTimeoutMs:  4000,
		},
		Cache: CacheSettings{
			AppsTTLMs:       2000,
			ScreenshotTTLMs: 2000,
			TreeTTLMs:       3000,
		},
	}
}

// Load reads settings from path. A missing file is not an error: the
// defaults apply.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings, nil
}
