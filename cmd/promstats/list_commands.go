// cmd/promstats/list_commands.go
package promstats

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands'.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the promstats command tree",
	Long:  `The 'commands' subcommand prints every available promstats command, indented by depth, next to its short description.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandRow struct {
	path  string
	short string
}

func listAllCommands(w io.Writer, root *cobra.Command) {
	rows := commandRows(root, "", 0)

	width := 0
	for _, r := range rows {
		width = max(width, len(r.path))
	}

	fmt.Fprintln(w, "Commands:")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-*s  %s\n", width, r.path, r.short)
	}
}

// commandRows flattens cmd and its available subcommands depth first.
// Hidden commands and help are skipped.
func commandRows(cmd *cobra.Command, parent string, depth int) []commandRow {
	path := cmd.Name()
	if parent != "" {
		path = parent + " " + path
	}
	rows := []commandRow{{path: strings.Repeat("  ", depth) + path, short: cmd.Short}}
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			rows = append(rows, commandRows(sub, path, depth+1)...)
		}
	}
	return rows
}
