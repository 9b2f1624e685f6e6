// Package project handles local persistence: crate project files, the
// user-level application config, and rule-table overrides.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// FileVersion is written into every project file for forward compatibility.
const FileVersion = "1"

// Project is a saved crate design: the inputs and, when a layout run has
// succeeded, its result.
type Project struct {
	Version   string `json:"version"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Product      model.ProductSpec      `json:"product"`
	Construction model.ConstructionSpec `json:"construction"`
	Options      model.OptionsSpec      `json:"options"`

	Result *model.CrateComponentModel `json:"result,omitempty"`
}

// NewProject returns a named project with default construction and options.
func NewProject(name string) Project {
	now := time.Now().UTC().Format(time.RFC3339)
	return Project{
		Version:      FileVersion,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
		Construction: model.DefaultConstruction(),
		Options:      model.DefaultOptions(),
	}
}

// Save writes the project to path as JSON, creating parent directories as
// needed and refreshing the update timestamp.
func Save(path string, p Project) error {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if p.Version == "" {
		p.Version = FileVersion
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// Load reads a project file from path.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("read project file: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parse project file: %w", err)
	}
	if p.Version == "" {
		return Project{}, fmt.Errorf("invalid project file: missing version field")
	}
	return p, nil
}
