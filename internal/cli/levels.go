package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/archlevel/internal/level"
)

var (
	levelsFile   string
	levelsFormat string
)

func init() {
	rootCmd.AddCommand(levelsCmd)
	levelsCmd.Flags().StringVar(&levelsFile, "levels", "", "Path to an alternate requirement table (YAML)")
	levelsCmd.Flags().StringVarP(&levelsFormat, "format", "f", "text", "Output format (text|json|yaml)")
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the requirement table for each microarchitecture level",
	Long: "Shows which feature flags each level requires on top of the previous one.\n" +
		"The yaml format is valid input for --levels, so it doubles as a template\n" +
		"for custom tables.",
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	table, err := level.LoadTable(levelsFile)
	if err != nil {
		return err
	}

	switch levelsFormat {
	case "json":
		out, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "yaml":
		fmt.Fprint(cmd.OutOrStdout(), level.TableYAML(table))
	default:
		for _, req := range table {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", level.LevelName(req.Level), strings.Join(req.Flags, " "))
		}
	}

	return nil
}
