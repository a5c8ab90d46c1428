// Package floorplan builds the initial list of free tables.
package floorplan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seatd/pkg/types"
)

// FromCapacities converts seat counts into tables, preserving order.
func FromCapacities(caps []int) ([]types.Table, error) {
	out := make([]types.Table, 0, len(caps))
	for i, c := range caps {
		t, err := types.NewTable(c)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseCSV parses a comma separated list of capacities such as "4,2,6".
// Blank items are skipped.
func ParseCSV(s string) ([]types.Table, error) {
	var caps []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse capacity %q: %w", part, err)
		}
		caps = append(caps, n)
	}
	return FromCapacities(caps)
}

// file accepts either a bare YAML list of capacities or a mapping with a
// "tables" key holding that list.
type file struct {
	Tables []int `yaml:"tables"`
}

// LoadFile reads a YAML floor plan. A leading '~' is expanded to the user's
// home directory.
func LoadFile(path string) ([]types.Table, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read floor plan: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("parse floor plan: %w", err)
	}
	var caps []int
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Content[0].Decode(&caps)
	} else {
		var f file
		err = node.Decode(&f)
		caps = f.Tables
	}
	if err != nil {
		return nil, fmt.Errorf("decode floor plan: %w", err)
	}
	return FromCapacities(caps)
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
