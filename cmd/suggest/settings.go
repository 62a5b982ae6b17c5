package main

import (
	"encoding/json"
	"os"
)

// settings is the CLI's own sidecar bookkeeping for the limit and
// highlight-delimiter verbs, which the in-memory engine itself has no
// mechanism to persist across separate process invocations (spec.md 1:
// no persistence is a property of the Store, not of this demo CLI).
type settings struct {
	limit int
	left  string
	right string
}

func settingsPath(dataPath string) string { return dataPath + ".settings.json" }

type settingsFile struct {
	Limit int    `json:"limit,omitempty"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

func loadSettings(dataPath string) settings {
	f, err := os.ReadFile(settingsPath(dataPath))
	if err != nil {
		return settings{}
	}
	var sf settingsFile
	if err := json.Unmarshal(f, &sf); err != nil {
		return settings{}
	}
	return settings{limit: sf.Limit, left: sf.Left, right: sf.Right}
}

func saveSettings(dataPath string, s settings) error {
	sf := settingsFile{Limit: s.limit, Left: s.left, Right: s.right}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(dataPath), data, 0o644)
}
