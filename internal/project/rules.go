package project

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// ruleFile mirrors the YAML rule-table override format. Only the lumber
// tables are overridable; decal rules ship with the application.
type ruleFile struct {
	SkidRules []struct {
		MaxWeight  float64 `mapstructure:"max_weight"`
		Nominal    string  `mapstructure:"nominal"`
		MaxSpacing float64 `mapstructure:"max_spacing"`
	} `mapstructure:"skid_rules"`
	SkidSizes map[string]struct {
		Width  float64 `mapstructure:"width"`
		Height float64 `mapstructure:"height"`
	} `mapstructure:"skid_sizes"`
	Floorboards   map[string]float64 `mapstructure:"floorboards"`
	MinSkidHeight float64            `mapstructure:"min_skid_height"`
}

// LoadRules returns the rule table for a run. An empty path yields the
// built-in defaults; otherwise the YAML file at path overrides whichever
// tables it names, leaving the rest at their defaults.
func LoadRules(path string) (model.RuleTable, error) {
	rules := model.DefaultRules()
	if path == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return model.RuleTable{}, fmt.Errorf("read rule table: %w", err)
	}

	var file ruleFile
	if err := v.Unmarshal(&file); err != nil {
		return model.RuleTable{}, fmt.Errorf("parse rule table: %w", err)
	}

	if len(file.SkidRules) > 0 {
		rules.SkidRules = rules.SkidRules[:0]
		for _, r := range file.SkidRules {
			rules.SkidRules = append(rules.SkidRules, model.SkidRule{
				MaxWeight:  r.MaxWeight,
				Nominal:    r.Nominal,
				MaxSpacing: r.MaxSpacing,
			})
		}
	}
	if len(file.SkidSizes) > 0 {
		rules.SkidSizes = make(map[string]model.LumberSize, len(file.SkidSizes))
		for nominal, s := range file.SkidSizes {
			rules.SkidSizes[nominal] = model.LumberSize{Width: s.Width, Height: s.Height}
		}
	}
	if len(file.Floorboards) > 0 {
		rules.Floorboards = file.Floorboards
	}
	if file.MinSkidHeight > 0 {
		rules.MinSkidHeight = file.MinSkidHeight
	}

	// Every skid rule must resolve to a known cross-section.
	for _, r := range rules.SkidRules {
		if _, ok := rules.SkidSizes[r.Nominal]; !ok {
			return model.RuleTable{}, fmt.Errorf("rule table: skid rule for %.0f lbs names unknown nominal %q", r.MaxWeight, r.Nominal)
		}
	}
	return rules, nil
}
