package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/engine"
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

func TestProjectSaveLoadRoundTrip(t *testing.T) {
	p := NewProject("pump housing crate")
	p.Product = model.ProductSpec{Weight: 600, Width: 38, Length: 46, Height: 91.5}
	p.Construction.ClearanceSide = 1.0

	a := engine.New(model.DefaultRules())
	result, err := a.Run(p.Product, p.Construction, p.Options)
	require.NoError(t, err)
	p.Result = result

	path := filepath.Join(t.TempDir(), "crate.json")
	require.NoError(t, Save(path, p))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Product, loaded.Product)
	assert.Equal(t, p.Construction, loaded.Construction)
	require.NotNil(t, loaded.Result)
	assert.Equal(t, result.Skids, loaded.Result.Skids)
	assert.Equal(t, result.RunID, loaded.Result.RunID)
	assert.NotEmpty(t, loaded.UpdatedAt)
}

func TestProjectSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "crate.json")
	require.NoError(t, Save(path, NewProject("nested")))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestProjectLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "versionless.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.AddRecentProject("/tmp/a.json")
	cfg.AddRecentProject("/tmp/b.json")
	cfg.AddRecentProject("/tmp/a.json") // moves to front, no duplicate
	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a.json", "/tmp/b.json"}, loaded.RecentProjects)
	assert.Equal(t, cfg.LastOptions, loaded.LastOptions)
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRules(), rules)
}

func TestLoadRulesOverride(t *testing.T) {
	const override = `
skid_rules:
  - max_weight: 1000
    nominal: "4x4"
    max_spacing: 20.0
floorboards:
  "2x8": 7.0
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(override), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	require.Len(t, rules.SkidRules, 1)
	assert.Equal(t, 20.0, rules.SkidRules[0].MaxSpacing)

	w, ok := rules.FloorboardWidth("2x8")
	require.True(t, ok)
	assert.Equal(t, 7.0, w)

	// Untouched tables keep their defaults.
	size, ok := rules.SkidSize("4x6")
	require.True(t, ok)
	assert.Equal(t, 5.5, size.Width)
	assert.Equal(t, 3.5, rules.MinSkidHeight)
}

func TestLoadRulesRejectsUnknownNominal(t *testing.T) {
	const override = `
skid_rules:
  - max_weight: 1000
    nominal: "9x9"
    max_spacing: 20.0
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(override), 0644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
