package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"stemsync/internal/ipc"
)

func newStemsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stems",
		Short: "List stems of the active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				if status.Project == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No active project. Upload a file first.")
					return nil
				}

				rows := make([]table.Row, 0, len(status.Project.Stems))
				for _, stem := range status.Project.Stems {
					rows = append(rows, table.Row{
						stem.ID,
						stem.Name,
						stem.Volume,
						stem.Pan,
						stem.Key,
						strconv.FormatFloat(stem.Tempo, 'f', 0, 64),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Project: %s\n", status.Project.Title)
				fmt.Fprintln(out, renderTable(
					[]tableColumn{
						{title: "ID"},
						{title: "Stem"},
						{title: "Volume", numeric: true},
						{title: "Pan", numeric: true},
						{title: "Key"},
						{title: "Tempo", numeric: true},
					},
					rows,
				))
				return nil
			})
		},
	}
}

func newMixCommand(ctx *commandContext) *cobra.Command {
	var volumeFlag int
	var panFlag int

	cmd := &cobra.Command{
		Use:   "mix <stem>",
		Short: "Adjust volume or pan on a stem",
		Long:  "Adjust volume or pan on a stem, addressed by type (vocal, drums, instruments, bass) or by ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.UpdateStemRequest{}
			if cmd.Flags().Changed("volume") {
				v := volumeFlag
				req.Volume = &v
			}
			if cmd.Flags().Changed("pan") {
				p := panFlag
				req.Pan = &p
			}
			if req.Volume == nil && req.Pan == nil {
				return fmt.Errorf("nothing to change: pass --volume and/or --pan")
			}

			return ctx.withClient(func(client *ipc.Client) error {
				stemID, err := resolveStemID(client, args[0])
				if err != nil {
					return err
				}
				req.StemID = stemID
				project, err := client.UpdateStem(req)
				if err != nil {
					return err
				}
				for _, stem := range project.Stems {
					if stem.ID == req.StemID {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: volume %d, pan %d\n",
							stem.Name, stem.Volume, stem.Pan)
						break
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&volumeFlag, "volume", 0, "Stem volume (0-100)")
	cmd.Flags().IntVar(&panFlag, "pan", 0, "Stem pan (-50 to 50)")
	return cmd
}

// resolveStemID maps a stem type name to the matching stem ID in the active
// project. Anything that does not match a type is treated as a literal ID so
// the daemon can report stem_not_found itself.
func resolveStemID(client *ipc.Client, arg string) (string, error) {
	status, err := client.Status()
	if err != nil {
		return "", err
	}
	if status.Project == nil {
		return arg, nil
	}
	for _, stem := range status.Project.Stems {
		if strings.EqualFold(stem.Type, arg) || stem.ID == arg {
			return stem.ID, nil
		}
	}
	return arg, nil
}
