package cmd

import (
	"fmt"
	"strconv"

	"github.com/rpgo/flowlabel/internal/label"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label NAME VALUE [GROWTH]",
		Short: "Print the label for a single node",
		Example: `  flowlabel label Revenue 50000 "+15.2%"
  flowlabel label -- Costs -1250000`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value %q is not a number: %w", args[1], label.ErrInvalidArgument)
			}
			var growth string
			if len(args) == 3 {
				growth = args[2]
			}
			l, err := label.GenerateLabel(args[0], value, growth)
			if err != nil {
				log.Error().Err(err).Str("name", args[0]).Str("value", args[1]).Msg("label rejected")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}
}
