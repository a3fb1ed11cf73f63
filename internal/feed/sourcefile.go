// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// SourcesFile is the on-disk list of feed identifiers to query. Keeping it
// in a file lets the same lists drive repeated runs without retyping flags.
type SourcesFile struct {
	ArxivCategories []string `yaml:"arxiv_categories"`
	BiorxivSubjects []string `yaml:"biorxiv_subjects"`

	// Subtitle overrides the report heading. When empty, the joined
	// category and subject lists are used.
	Subtitle string `yaml:"subtitle,omitempty"`
}

// DefaultSources returns the built-in category and subject lists.
func DefaultSources() SourcesFile {
	return SourcesFile{
		ArxivCategories: []string{"physics.bio-ph", "physics.chem-ph", "cs.AI", "cs.LG"},
		BiorxivSubjects: []string{"bioinformatics", "biophysics"},
	}
}

// ResolvedSubtitle returns the explicit subtitle if set, otherwise the
// comma-joined category and subject lists.
func (s SourcesFile) ResolvedSubtitle() string {
	if s.Subtitle != "" {
		return s.Subtitle
	}
	all := make([]string, 0, len(s.ArxivCategories)+len(s.BiorxivSubjects))
	all = append(all, s.ArxivCategories...)
	all = append(all, s.BiorxivSubjects...)
	return strings.Join(all, ", ")
}

// WriteSourcesFile saves the source lists to a YAML file.
func WriteSourcesFile(path string, s SourcesFile) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling sources file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSourcesFile loads a sources file from disk.
func ReadSourcesFile(path string) (*SourcesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}
	var s SourcesFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}
	return &s, nil
}
