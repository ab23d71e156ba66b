package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/render"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
)

type samplesOptions struct {
	outDir string
	width  int
	only   []string
}

func (a *App) newSamplesCmd() *cobra.Command {
	opts := &samplesOptions{}
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Render the built-in sample reports",
		Long: `Render the three built-in reports from their sample tallies and write them as
PNGs under the output directory. Runs headlessly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSamples(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "samples", "Directory to write PNGs into")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width in pixels (default: each report's own size)")
	cmd.Flags().StringSliceVar(&opts.only, "report", nil, "Render only these reports")
	return cmd
}

func (a *App) runSamples(cmd *cobra.Command, opts *samplesOptions) error {
	kinds := report.Kinds()
	if len(opts.only) > 0 {
		kinds = kinds[:0:0]
		for _, name := range opts.only {
			k, err := report.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	b := render.New(render.WithWidth(opts.width))
	for _, k := range kinds {
		in, err := report.Sample(k)
		if err != nil {
			return err
		}
		pl, err := report.Generate(k, in)
		if err != nil {
			return err
		}
		path, err := writeLayoutPNG(cmd, b, pl, opts.outDir, string(k)+".png")
		if err != nil {
			return err
		}
		logging.Debugf("sample %s written to %s", k, path)
		fmt.Fprintf(a.stdout, "wrote %s\n", path)
	}
	return nil
}
