package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/project"
)

type initOpts struct {
	name     string
	weight   float64
	width    float64
	length   float64
	height   float64
	fragile  bool
	handling bool
	style    string
	force    bool
}

func newInitCmd() *cobra.Command {
	opts := initOpts{}

	cmd := &cobra.Command{
		Use:   "init <project.json>",
		Short: "Create a new crate project file",
		Long: `Init scaffolds a project file with default construction values and the
product dimensions given on the command line. Edit the file to adjust
clearances, lumber choices, or the crate style before calculating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "project name (default: file name)")
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "product weight in pounds")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "product width in inches (across skids)")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "product length in inches (along skids)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "product height in inches")
	cmd.Flags().BoolVar(&opts.fragile, "fragile", false, "mark the product fragile")
	cmd.Flags().BoolVar(&opts.handling, "special-handling", false, "mark the product for special handling")
	cmd.Flags().StringVar(&opts.style, "style", string(model.StyleB), `crate style, "A" or "B"`)
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing project file")

	return cmd
}

func runInit(cmd *cobra.Command, path string, opts initOpts) error {
	logger := loggerFromContext(cmd.Context())

	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	style := model.Style(strings.ToUpper(opts.style))
	if style != model.StyleA && style != model.StyleB {
		return fmt.Errorf("unknown crate style %q (want A or B)", opts.style)
	}

	p := project.NewProject(name)
	p.Product = model.ProductSpec{
		Weight:          opts.weight,
		Width:           opts.width,
		Length:          opts.length,
		Height:          opts.height,
		Fragile:         opts.fragile,
		SpecialHandling: opts.handling,
	}
	p.Options.Style = style

	if err := project.Save(path, p); err != nil {
		return err
	}
	logger.Info("created project", "name", name, "path", path)
	return nil
}
