package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/swap-form/internal/format/table"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTokensCommand(r *runner) *cobra.Command {
	var (
		symbol     string
		jsonOutput bool
	)
	cmd := &cobra.Command{
		Use:     "tokens",
		Aliases: []string{"list-tokens", "ls"},
		Short:   "List the tokens offered by the selectors",
		Long: `List the token catalog used by the send and receive selectors.

--symbol applies the same case-insensitive substring match as the selector
search box.

Examples:
  swap-form tokens
  swap-form tokens --symbol us
  swap-form tokens --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := r.cfg.App.Registry()
			if err != nil {
				return configError(err)
			}
			symbols := registry.Filter(symbol)
			out := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.MarshalIndent(symbols, "", "  ")
				if err != nil {
					return errors.Wrap(err, "encode tokens")
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			if len(symbols) == 0 {
				fmt.Fprintln(out, "No token found.")
				return nil
			}
			fmt.Fprintln(out, strings.Repeat("=", 30))
			color.New(color.FgGreen).Fprintln(out, "SUPPORTED TOKENS")
			fmt.Fprintln(out, strings.Repeat("=", 30))
			rows := make([][]string, len(symbols))
			for i, s := range symbols {
				rows[i] = []string{strconv.Itoa(i + 1), color.YellowString(s)}
			}
			for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}) {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintf(out, "\nTotal: %d of %d tokens\n", len(symbols), registry.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "filter by token symbol")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "output in JSON format")
	return cmd
}
