package cmd

import (
	"fmt"

	"github.com/rpgo/flowlabel/internal/config"
	"github.com/rpgo/flowlabel/internal/label"
	"github.com/rpgo/flowlabel/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var (
		inputFile  string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Label every node in a YAML or JSON input file",
		Long: `Reads nodes from --input and renders their labels with the chosen format.

The input is either a list of {name, value, yoyGrowth} records or a mapping
with "title" and "nodes" keys. Processing stops at the first invalid node.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := v.GetString("format")

			doc, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				log.Error().Err(err).Str("file", inputFile).Msg("failed to load nodes")
				return err
			}

			g := &label.Generator{Logger: zerologAdapter{l: log.Logger}}
			report, err := output.BuildReport(doc.Title, doc.Nodes, g)
			if err != nil {
				return err
			}

			if outputFile == "" {
				return output.GenerateReport(cmd.OutOrStdout(), report, format)
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
			}
			path, err := output.WriteFormatted(f, report, outputFile)
			if err != nil {
				return fmt.Errorf("writing %s: %w", outputFile, err)
			}
			log.Info().
				Str("file", path).
				Str("format", f.Name()).
				Int("nodes", len(report.Entries)).
				Msg("labels written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML or JSON file with nodes")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringP("format", "f", "text", "output format (text, console, csv, json, html)")
	_ = cmd.MarkFlagRequired("input")
	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}
