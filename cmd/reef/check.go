package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"reef/internal/diag"
	"reef/internal/diagfmt"
	"reef/internal/driver"
	"reef/internal/project"
	"reef/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [directory]",
	Short: "Parse every script of a reef project",
	Long: `Check finds the nearest reef.toml manifest, parses every *.rf file in its
include directories and reports diagnostics. Unchanged files are served
from the parse cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "reparse every file, ignoring the parse cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	manifestPath, ok := project.Find(absDir)
	if !ok {
		return fmt.Errorf("no %s found from %s upward", project.ManifestName, absDir)
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	var cache *driver.DiskCache
	if !noCache {
		// A broken cache dir is not fatal; check just reparses everything.
		cache, _ = driver.OpenDiskCache("reef")
	}

	opts := driver.ParseOptions{MaxDiagnostics: manifest.MaxDiagnostics}
	pretty := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}

	hadErrors := false
	checked, cached := 0, 0
	for _, include := range manifest.Include {
		files, err := driver.ListScriptFiles(filepath.Join(manifest.Dir, include))
		if err != nil {
			return err
		}
		for _, path := range files {
			bag, fs, fromCache, err := checkFile(path, opts, cache)
			if err != nil {
				return err
			}
			checked++
			if fromCache {
				cached++
			}
			hadErrors = hadErrors || bag.HasErrors()
			if bag.Len() > 0 {
				bag.Sort()
				diagfmt.Pretty(os.Stderr, bag, fs, pretty)
			}
		}
	}

	fmt.Fprintf(os.Stdout, "checked %d files (%d cached)\n", checked, cached)
	if hadErrors {
		os.Exit(1)
	}
	return nil
}

// checkFile parses one script, going through the parse cache when the
// content hash matches a stored result.
func checkFile(path string, opts driver.ParseOptions, cache *driver.DiskCache) (*diag.Bag, *source.FileSet, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false, err
	}
	key := driver.HashContent(content)

	if cache != nil {
		if payload, ok := cache.Load(key); ok {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(path, content)
			bag := payload.RestoreBag(fileID, opts.MaxDiagnostics)
			return bag, fs, true, nil
		}
	}

	res := driver.ParseBytes(path, content, opts)
	if cache != nil {
		// Best effort; a failed store only costs a reparse next time.
		_ = cache.Store(key, driver.CacheResult(res))
	}
	return res.Bag, res.Set.Files(), false, nil
}
