package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stemsync/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and project status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				for _, line := range renderSectionHeader("Stemsync Studio", colorize) {
					fmt.Fprintln(out, line)
				}

				runningKind := statusError
				runningMsg := "stopped"
				if status.Running {
					runningKind = statusOK
					runningMsg = "running"
				}
				fmt.Fprintln(out, renderStatusLine("Daemon", runningKind, runningMsg, colorize))
				fmt.Fprintln(out, renderStatusLine("Workflow", stateStatusKind(status.State), status.State, colorize))
				fmt.Fprintln(out, renderStatusLine("Credits", statusInfo, fmt.Sprintf("%d", status.Credits), colorize))
				if status.APIAddress != "" {
					fmt.Fprintln(out, renderStatusLine("API", statusOK, status.APIAddress, colorize))
				}
				if status.LastError != "" {
					fmt.Fprintln(out, renderStatusLine("Last error", statusError, status.LastError, colorize))
				}
				if status.Project != nil {
					fmt.Fprintln(out, renderStatusLine("Project", statusOK,
						fmt.Sprintf("%s (%s)", status.Project.Title, status.Project.ID), colorize))
				} else {
					fmt.Fprintln(out, renderStatusLine("Project", statusInfo, "none", colorize))
				}
				return nil
			})
		},
	}
}
