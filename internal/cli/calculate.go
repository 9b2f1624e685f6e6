package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/engine"
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/export"
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/project"
)

type calculateOpts struct {
	outDir     string
	rulesPath  string
	configPath string
	pdf        bool
	bom        bool
	dxf        bool
	labels     bool
	all        bool
	noSave     bool
}

func newCalculateCmd() *cobra.Command {
	opts := calculateOpts{}

	cmd := &cobra.Command{
		Use:   "calculate <project.json>",
		Short: "Run the layout engine on a project and write its deliverables",
		Long: `Calculate loads a crate project file, runs the layout engine against it,
and writes the NX expression file. Optional flags add shop deliverables:
a dimensioned PDF drawing, a bill of materials spreadsheet, a DXF plan
outline, and QR part labels. The computed layout is saved back into the
project file unless --no-save is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory (default: project file directory)")
	cmd.Flags().StringVar(&opts.rulesPath, "rules", "", "YAML rule-table override (default: from app config)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "app config path (default: ~/.autocrate/config.json)")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "write a dimensioned PDF drawing")
	cmd.Flags().BoolVar(&opts.bom, "bom", false, "write a bill of materials spreadsheet")
	cmd.Flags().BoolVar(&opts.dxf, "dxf", false, "write a DXF plan outline")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "write a QR part-label sheet")
	cmd.Flags().BoolVar(&opts.all, "all", false, "write every deliverable")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not write the result back into the project file")

	return cmd
}

func runCalculate(cmd *cobra.Command, projectPath string, opts calculateOpts) error {
	logger := loggerFromContext(cmd.Context())

	configPath := opts.configPath
	if configPath == "" {
		configPath = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	proj, err := project.Load(projectPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded project", "name", proj.Name, "path", projectPath)

	rulesPath := opts.rulesPath
	if rulesPath == "" {
		rulesPath = cfg.RuleTablePath
	}
	rules, err := project.LoadRules(rulesPath)
	if err != nil {
		return err
	}
	if rulesPath != "" {
		logger.Debug("rule table overridden", "path", rulesPath)
	}

	result, err := engine.New(rules).Run(proj.Product, proj.Construction, proj.Options)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}
	logger.Info("layout computed",
		"run", result.RunID,
		"skids", result.Skids.Count,
		"crate_w", result.CrateWidthOD,
		"crate_l", result.CrateLengthOD,
		"crate_h", result.CrateHeightOD)
	for _, w := range result.Warnings {
		logger.Warn(w.Message, "code", w.Code)
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = filepath.Dir(projectPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(projectPath), filepath.Ext(projectPath))
	outPath := func(ext string) string { return filepath.Join(outDir, base+ext) }

	expPath := outPath(".exp")
	if err := export.ExportExp(expPath, result); err != nil {
		return fmt.Errorf("write expression file: %w", err)
	}
	logger.Info("wrote expression file", "path", expPath)

	if opts.all || opts.pdf {
		path := outPath(".pdf")
		if err := export.ExportPDF(path, result); err != nil {
			return fmt.Errorf("write drawing: %w", err)
		}
		logger.Info("wrote drawing", "path", path)
	}
	if opts.all || opts.bom {
		path := outPath("_bom.xlsx")
		if err := export.ExportBOM(path, result); err != nil {
			return fmt.Errorf("write bill of materials: %w", err)
		}
		logger.Info("wrote bill of materials", "path", path)
	}
	if opts.all || opts.dxf {
		path := outPath(".dxf")
		if err := export.ExportDXF(path, result); err != nil {
			return fmt.Errorf("write DXF: %w", err)
		}
		logger.Info("wrote DXF", "path", path)
	}
	if opts.all || opts.labels {
		path := outPath("_labels.pdf")
		if err := export.ExportLabels(path, result); err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
		logger.Info("wrote labels", "path", path)
	}

	if !opts.noSave {
		proj.Result = result
		if err := project.Save(projectPath, proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		logger.Debug("saved result into project", "path", projectPath)
	}

	cfg.AddRecentProject(projectPath)
	cfg.LastConstruction = proj.Construction
	cfg.LastOptions = proj.Options
	if err := project.SaveAppConfig(configPath, cfg); err != nil {
		logger.Warn("could not update app config", "err", err)
	}

	return nil
}
