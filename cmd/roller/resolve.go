package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/build-roller/internal/errors"
)

// resolveDataPath finds the catalog source. Absolute paths are used as
// given; relative ones are tried in the working directory, then next to
// the executable so a double-clicked binary finds its spreadsheet.
func resolveDataPath(path string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir = filepath.Dir(exe)
	}

	return findDataPath(path, wd, exeDir)
}

func findDataPath(path string, dirs ...string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.InvalidArgument("data path is required")
	}
	if filepath.IsAbs(path) {
		return path, nil
	}

	var tried []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, path)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		tried = append(tried, candidate)
	}

	return "", errors.NotFoundf("catalog source %s not found", path).
		WithMeta("path", path).
		WithMeta("tried", tried)
}
