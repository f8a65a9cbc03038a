package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stemsync/internal/ipc"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an audio file and separate it into stems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			if source == "" {
				return fmt.Errorf("source path is required")
			}
			absPath, err := filepath.Abs(source)
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}

			return ctx.withClient(func(client *ipc.Client) error {
				project, err := client.Upload(absPath)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Separated %q into %d stems (project %s)\n",
					project.Title, len(project.Stems), project.ID)
				fmt.Fprintln(out, "Run `stemsync stems` to inspect the mix.")
				return nil
			})
		},
	}
}
