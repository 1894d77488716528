// Package config — .loccheck.yaml configuration file and index.json
// file-list support.
//
// When a .loccheck.yaml file exists in the project root, its settings are
// the defaults for a check run; command-line flags override it. The list
// of files to validate comes from (in order of precedence) command-line
// arguments, the configured file list, or an index.json file containing a
// JSON array of paths.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".loccheck.yaml"

// IndexFileName is the default file-list name, kept for compatibility
// with existing localization pipelines.
const IndexFileName = "index.json"

// File is the top-level .loccheck.yaml structure.
type File struct {
	// Files lists the XML files to validate, relative to the config file.
	Files []string `yaml:"files,omitempty"`
	// Index is the path to a JSON file listing the XML files instead.
	Index string `yaml:"index,omitempty"`
	// Languages overrides the supported language-tag list used to
	// validate the show_lang selector. It never restricts which tags may
	// appear in the data.
	Languages []string `yaml:"languages,omitempty"`
	// ShowLang enables the missing-translation check for one language.
	ShowLang string `yaml:"show_lang,omitempty"`
	// DisplayLimit caps printed list lengths and missing-translation
	// diagnostics (default 10).
	DisplayLimit int `yaml:"display_limit,omitempty"`
	// WarningsAsErrors promotes spacing/punctuation/missing-language
	// warnings to errors.
	WarningsAsErrors bool `yaml:"warnings_as_errors,omitempty"`
	// Preview enables HTML preview generation.
	Preview bool `yaml:"preview,omitempty"`
	// PreviewFile is the preview output path (default preview.html).
	PreviewFile string `yaml:"preview_file,omitempty"`
}

// Load reads .loccheck.yaml from the given directory. Returns nil if no
// config file exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Defaults
	if f.DisplayLimit == 0 {
		f.DisplayLimit = 10
	}
	if f.PreviewFile == "" {
		f.PreviewFile = "preview.html"
	}
	return &f, nil
}

// LoadIndex reads a JSON array of file paths. Paths are resolved relative
// to the index file's directory.
func LoadIndex(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, f := range files {
		if !filepath.IsAbs(f) {
			files[i] = filepath.Join(dir, f)
		}
	}
	return files, nil
}
