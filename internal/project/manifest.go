// Package project loads reef.toml script-project manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up when walking toward the root.
const ManifestName = "reef.toml"

// ErrScriptSectionMissing indicates that [script] is missing in a manifest.
var ErrScriptSectionMissing = errors.New("missing [script]")

// Manifest describes a reef script project.
type Manifest struct {
	// Name of the project, from [script].name.
	Name string
	// Entry is the main script, from [script].main. Optional.
	Entry string
	// Include lists directories whose *.rf files `reef check` parses.
	// Defaults to the manifest directory.
	Include []string
	// MaxDiagnostics caps the diagnostic bags, from [parser].
	MaxDiagnostics int
	// Dir is the directory holding the manifest.
	Dir string
}

type manifestFile struct {
	Script struct {
		Name    string   `toml:"name"`
		Main    string   `toml:"main"`
		Include []string `toml:"include"`
	} `toml:"script"`
	Parser struct {
		MaxDiagnostics int `toml:"max_diagnostics"`
	} `toml:"parser"`
}

// Load parses a reef.toml manifest.
func Load(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("script") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrScriptSectionMissing)
	}

	m := Manifest{
		Name:           cfg.Script.Name,
		Entry:          cfg.Script.Main,
		Include:        cfg.Script.Include,
		MaxDiagnostics: cfg.Parser.MaxDiagnostics,
		Dir:            filepath.Dir(path),
	}
	if m.MaxDiagnostics <= 0 {
		m.MaxDiagnostics = 100
	}
	if len(m.Include) == 0 {
		m.Include = []string{"."}
	}
	return m, nil
}

// Find walks from dir upward looking for a reef.toml.
func Find(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
