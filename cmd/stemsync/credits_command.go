package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"stemsync/internal/ipc"
)

func newCreditsCommand(ctx *commandContext) *cobra.Command {
	creditsCmd := &cobra.Command{
		Use:   "credits",
		Short: "Show the credit balance and package catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				packages, err := client.Packages()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Balance: %d credit(s)\n\n", status.Credits)

				rows := make([]table.Row, 0, len(packages))
				for _, pkg := range packages {
					name := pkg.ID
					if pkg.Popular {
						name += " *"
					}
					bonus := ""
					if pkg.Bonus > 0 {
						bonus = fmt.Sprintf("+%d", pkg.Bonus)
					}
					rows = append(rows, table.Row{
						name,
						pkg.Credits,
						bonus,
						pkg.Total,
						formatPrice(pkg.PriceCents),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]tableColumn{
						{title: "Package"},
						{title: "Credits", numeric: true},
						{title: "Bonus", numeric: true},
						{title: "Total", numeric: true},
						{title: "Price", numeric: true},
					},
					rows,
				))
				fmt.Fprintln(out, "* most popular")
				return nil
			})
		},
	}

	creditsCmd.AddCommand(newCreditsBuyCommand(ctx))
	return creditsCmd
}

func newCreditsBuyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <package-id>",
		Short: "Purchase a credit package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				receipt, err := client.Purchase(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Purchased %d credit(s) for %s; balance is now %d\n",
					receipt.CreditsGranted, formatPrice(receipt.Package.PriceCents), receipt.NewBalance)
				return nil
			})
		},
	}
}

func formatPrice(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
