package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

type metricsOptions struct {
	file       string
	reportName string
	asJSON     bool
}

func (a *App) newMetricsCmd() *cobra.Command {
	opts := &metricsOptions{}
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the metrics of a report definition's responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMetrics(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to report definition (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.reportName, "report", "r", "", "Report to use when the file names none")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print metrics as JSON")
	return cmd
}

func (a *App) runMetrics(opts *metricsOptions) error {
	if opts.file == "" {
		return fmt.Errorf("report definition path is required (-f flag)")
	}
	def, err := loadDefinition(opts.file, opts.reportName)
	if err != nil {
		return err
	}
	m, err := survey.Compute(def.Responses)
	if err != nil {
		return err
	}
	if opts.asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	fmt.Fprintf(a.stdout, "Total responses: %d\n", m.Total)
	for i, label := range m.Labels {
		c, _ := def.Responses.Count(label)
		fmt.Fprintf(a.stdout, "%s: %d (%.1f%%) cumulative %d\n", label, c, m.Percentages[i], m.Cumulative[i])
	}
	text, err := layout.SummaryText(layout.SummaryInput{Responses: def.Responses, Metrics: m, Groups: def.Groups})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "\n%s\n", text)
	return nil
}
