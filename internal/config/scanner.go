package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneEntry is a scene file discovered in a scenes directory.
type SceneEntry struct {
	Name string // File name without extension
	Path string // Path to the file
}

// ScanSceneDirectory lists the YAML scene files in dir, sorted by name.
// Subdirectories and hidden files are skipped.
func ScanSceneDirectory(dir string) ([]SceneEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene directory: %w", err)
	}

	var scenes []SceneEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !IsSceneFile(name) {
			continue
		}
		scenes = append(scenes, SceneEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes, nil
}

// FindScene returns the entry called name. A YAML extension on name is ignored.
func FindScene(scenes []SceneEntry, name string) (SceneEntry, bool) {
	if IsSceneFile(name) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	for _, s := range scenes {
		if s.Name == name {
			return s, true
		}
	}
	return SceneEntry{}, false
}

// IsSceneFile reports whether path has a YAML extension.
func IsSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
