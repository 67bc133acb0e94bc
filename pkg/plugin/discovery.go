package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var pluginExtensions = []string{".yaml", ".yml", ".json", ".go"}

// SearchPaths returns the directories scanned for plugin files, in
// precedence order: ./plugins first, then ~/.novena/plugins.
func SearchPaths() []string {
	paths := []string{"plugins"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".novena", "plugins"))
	}
	return paths
}

// Find resolves a plugin name to a file path. Bare names are tried with
// each supported extension in each search path; names carrying a path
// separator or extension are treated as literal paths.
func Find(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("plugin %q not found: %w", name, err)
		}
		return name, nil
	}
	for _, dir := range SearchPaths() {
		for _, ext := range pluginExtensions {
			candidate := filepath.Join(dir, name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("plugin %q not found in %s", name, strings.Join(SearchPaths(), ", "))
}

// List enumerates plugin names discoverable across the search paths,
// deduplicated and sorted. Earlier search paths win on name collisions,
// but since only the name is returned the distinction is cosmetic here.
func List() []string {
	seen := map[string]bool{}
	for _, dir := range SearchPaths() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if !supportedExtension(ext) {
				continue
			}
			seen[strings.TrimSuffix(entry.Name(), ext)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func supportedExtension(ext string) bool {
	for _, e := range pluginExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load finds and parses a plugin by name or path.
func Load(name string) (*Definition, error) {
	path, err := Find(name)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".go" {
		return loadGoPlugin(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	return Parse(data)
}
