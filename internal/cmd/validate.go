package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/flowlabel/internal/label"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errIncompleteLabel = errors.New("label is incomplete")

func newValidateCmd() *cobra.Command {
	var (
		name    string
		value   float64
		growth  string
		escaped bool
	)

	cmd := &cobra.Command{
		Use:   "validate LABEL",
		Short: "Check that a label carries the expected name, amount and growth note",
		Example: `  flowlabel validate --escaped 'Revenue\n$50k\n(+15.2%)' --name Revenue --growth +15.2%`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := args[0]
			if escaped {
				l = strings.ReplaceAll(l, `\n`, "\n")
			}
			ok := label.ValidateLabelCompleteness(l, name, value, growth)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				log.Warn().Str("label", l).Str("name", name).Str("growth", growth).Msg("incomplete label")
				return errIncompleteLabel
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "expected node name")
	cmd.Flags().Float64Var(&value, "value", 0, "expected node value")
	cmd.Flags().StringVar(&growth, "growth", "", "expected year-over-year growth")
	cmd.Flags().BoolVar(&escaped, "escaped", false, `treat "\n" in LABEL as a line break`)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
