package model

// AppConfig holds user-level application preferences persisted between runs.
type AppConfig struct {
	RecentProjects   []string `json:"recent_projects"`
	DefaultExportDir string   `json:"default_export_dir"`
	RuleTablePath    string   `json:"rule_table_path,omitempty"` // optional YAML override

	LastConstruction ConstructionSpec `json:"last_construction"`
	LastOptions      OptionsSpec      `json:"last_options"`
}

// maxRecentProjects bounds the recent-project list.
const maxRecentProjects = 10

// DefaultAppConfig returns the configuration used on first run.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RecentProjects:   []string{},
		LastConstruction: DefaultConstruction(),
		LastOptions:      DefaultOptions(),
	}
}

// AddRecentProject puts path at the front of the recent list, dropping
// duplicates and trimming to the limit.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
