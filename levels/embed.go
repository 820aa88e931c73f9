package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Layout is a handcrafted track. Lanes count from 0 on the left.
type Layout struct {
	Name   string      `json:"name"`
	Length float64     `json:"length"`
	Items  []Placement `json:"items"`
}

type Placement struct {
	Type  string  `json:"type"`
	Lane  int     `json:"lane"`
	Z     float64 `json:"z"`
	Value int     `json:"value,omitempty"`
}

func LoadLayoutFromFS(name string) (*Layout, error) {
	if path.Ext(name) == "" {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Layout
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	return &lvl, nil
}

// Names lists the embedded layouts without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
