package scan

import (
	"fmt"
	"os"

	"github.com/viant/archscan/signal"
	"gopkg.in/yaml.v3"
)

// loadThresholds starts from signal.DefaultThresholds and, when path is
// non-empty, overrides individual fields from a YAML file — the
// configuration layer §4.3 anticipates for the catalog's named constants.
func loadThresholds(path string) (signal.Thresholds, error) {
	t := signal.DefaultThresholds()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse config %s: %w", path, err)
	}
	return t, nil
}
