package cli

import (
	"fmt"

	"github.com/atomicstack/swap-form/internal/form"
	"github.com/atomicstack/swap-form/internal/format/table"
	"github.com/atomicstack/swap-form/internal/swap"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCommand(r *runner) *cobra.Command {
	var send, amount, receive string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a swap request without the terminal UI",
		Long: `Validate a swap request the way the form does on submit. Token symbols
are checked against the catalog exactly as typed.

On success the swap details are printed as JSON. On failure every field
error is listed and the exit status is 1.

Examples:
  swap-form validate --send ETH --amount 0.5 --receive USDC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := r.cfg.App.Registry()
			if err != nil {
				return configError(err)
			}
			out := cmd.OutOrStdout()
			notify := form.NotifierFunc(func(title, body string) {
				color.New(color.FgGreen, color.Bold).Fprintln(out, title)
				fmt.Fprintln(out, body)
			})
			ctrl := form.NewController(swap.NewSchema(registry), notify)
			ctrl.SetValue(swap.SendToken, send)
			ctrl.SetValue(swap.Amount, amount)
			ctrl.SetValue(swap.ReceiveToken, receive)

			res := ctrl.Submit()
			if res.OK {
				return nil
			}
			errOut := cmd.ErrOrStderr()
			color.New(color.FgRed, color.Bold).Fprintln(errOut, "Invalid swap request:")
			rows := make([][]string, 0, len(res.Errors))
			for _, field := range res.Errors.Fields() {
				fe, _ := res.Errors.Get(field)
				msg := color.RedString(fe.Message)
				if hint := fe.Hint(); hint != "" {
					msg += " " + color.YellowString("(%s)", hint)
				}
				rows = append(rows, []string{field.Label() + ":", msg})
			}
			for _, line := range table.Format(rows, nil) {
				fmt.Fprintf(errOut, "  %s\n", line)
			}
			return &ExitError{Code: exitInvalid}
		},
	}
	cmd.Flags().StringVar(&send, "send", "", "token to send")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to send")
	cmd.Flags().StringVar(&receive, "receive", "", "token to receive")
	return cmd
}
