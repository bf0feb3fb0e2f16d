package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OS lookups used by ResolvePaths, replaceable in tests.
var (
	osExecutable = os.Executable
	osGetwd      = os.Getwd
	osTempDir    = os.TempDir
)

// resourcesDir is where an installed layout keeps the backend executable.
const resourcesDir = "resources"

// ResolvePaths computes where the backend and config.json live.
func ResolvePaths(s Settings) (AppPaths, error) {
	mode := s.Mode
	if mode == "" {
		mode = ModeAuto
	}
	if mode == ModeAuto {
		detected, err := detectMode()
		if err != nil {
			return AppPaths{}, err
		}
		mode = detected
	}

	name := s.Backend.Name
	if name == "" {
		name = DefaultBackendName()
	}

	var p AppPaths
	switch mode {
	case ModeDevelopment:
		root := s.RootDir
		if root == "" {
			wd, err := osGetwd()
			if err != nil {
				return AppPaths{}, fmt.Errorf("failed to get working directory: %w", err)
			}
			root = wd
		}
		root, err := filepath.Abs(root)
		if err != nil {
			return AppPaths{}, fmt.Errorf("failed to resolve root %q: %w", s.RootDir, err)
		}
		p = AppPaths{
			RootDir:     root,
			ConfigDir:   root,
			BackendPath: filepath.Join(root, name),
		}
	case ModeInstalled:
		exeDir, err := executableDir()
		if err != nil {
			return AppPaths{}, err
		}
		p = AppPaths{
			RootDir:     exeDir,
			ConfigDir:   exeDir,
			BackendPath: filepath.Join(exeDir, resourcesDir, name),
		}
	default:
		return AppPaths{}, fmt.Errorf("unknown mode %q (want auto, development or installed)", s.Mode)
	}

	p.Mode = mode
	p.ConfigPath = filepath.Join(p.RootDir, FileName)
	if s.Backend.Path != "" {
		abs, err := filepath.Abs(s.Backend.Path)
		if err != nil {
			return AppPaths{}, fmt.Errorf("failed to resolve backend path %q: %w", s.Backend.Path, err)
		}
		p.BackendPath = abs
	}
	return p, nil
}

// detectMode treats a binary living under the temp dir (a `go run` or
// `go test` build) as a development run.
func detectMode() (Mode, error) {
	exeDir, err := executableDir()
	if err != nil {
		return "", err
	}
	tmp := osTempDir()
	candidates := []string{tmp}
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil && resolved != tmp {
		candidates = append(candidates, resolved)
	}
	for _, dir := range candidates {
		rel, err := filepath.Rel(dir, exeDir)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return ModeDevelopment, nil
		}
	}
	return ModeInstalled, nil
}

func executableDir() (string, error) {
	exe, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
