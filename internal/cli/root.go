package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/archlevel/internal/cpuinfo"
	"github.com/ppiankov/archlevel/internal/level"
)

var (
	rootCPUInfo string
	rootStdin   bool
	rootAssert  int
	rootVerbose bool
	rootLevels  string
	rootFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "archlevel",
	Short: "Report the x86-64 microarchitecture level supported by this CPU",
	Long: "Parses the CPU's reported feature flags and classifies them against the\n" +
		"cumulative x86-64-v1 through x86-64-v4 feature sets.\n\n" +
		"Prints the highest fully supported level (0 when even v1 is not met).\n" +
		"With --assert N, prints nothing and exits 0 only if the CPU supports\n" +
		"at least level N — use this to gate scripts and service units.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", args[0])
			os.Exit(2)
		}
		return nil
	},
	SilenceUsage: true,
	RunE:         runDetect,
}

func init() {
	rootCmd.Flags().StringVar(&rootCPUInfo, "cpuinfo", cpuinfo.DefaultPath, "Path to the cpuinfo file to inspect")
	rootCmd.Flags().BoolVar(&rootStdin, "stdin", false, "Read the cpuinfo text from standard input instead of a file")
	rootCmd.Flags().IntVar(&rootAssert, "assert", 0, fmt.Sprintf("Assert a minimum level (1-%d); quiet, exit 1 on failure", level.Max))
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Also explain which flag blocked the next level")
	rootCmd.Flags().StringVar(&rootLevels, "levels", "", "Path to an alternate requirement table (YAML)")
	rootCmd.Flags().StringVarP(&rootFormat, "format", "f", "text", "Output format (text|json)")

	// Malformed invocations are usage errors, distinct from runtime failures.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
		return err
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// detectReport is the JSON form of a detection result.
type detectReport struct {
	Level     int    `json:"level"`
	LevelName string `json:"level_name"`
	Blocking  string `json:"blocking_flag,omitempty"`
	CPU       string `json:"cpu,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	if rootAssert != 0 && (rootAssert < 1 || rootAssert > level.Max) {
		fmt.Fprintf(os.Stderr, "Error: invalid --assert level %d (must be 1-%d)\n", rootAssert, level.Max)
		os.Exit(2)
	}

	table, err := level.LoadTable(rootLevels)
	if err != nil {
		return err
	}

	var src io.Reader
	if rootStdin {
		src = cmd.InOrStdin()
	}
	raw, err := cpuinfo.ReadSource(rootCPUInfo, src)
	if err != nil {
		return err
	}

	flags, err := cpuinfo.ParseFlags(raw)
	if err != nil {
		return err
	}

	result := level.ClassifyAgainst(table, flags)

	if rootAssert != 0 {
		if result.Level >= rootAssert {
			return nil
		}
		fmt.Fprintln(os.Stderr, level.DescribeAssertFailure(result, rootAssert, cpuinfo.Hostname()))
		os.Exit(1)
	}

	switch rootFormat {
	case "json":
		report := detectReport{
			Level:     result.Level,
			LevelName: level.LevelName(result.Level),
			Blocking:  result.Blocking,
			CPU:       cpuinfo.ModelName(raw),
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), result.Level)
		if rootVerbose {
			name := cpuinfo.ModelName(raw)
			if result.Blocking != "" {
				fmt.Fprintln(cmd.OutOrStdout(), level.DescribeBlocked(result, name))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), level.DescribeFullSupport(result, name))
			}
		}
	}

	return nil
}
