package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/pvlocate/internal/buildinfo"
	"github.com/tsukumogami/pvlocate/internal/errmsg"
	"github.com/tsukumogami/pvlocate/internal/log"
)

// Global flags
var (
	quietFlag   bool
	verboseFlag bool
	debugFlag   bool

	rootFlag    string
	osFlag      string
	machineFlag string
	cpuInfoFlag string
	layoutFlag  string
	formatFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "pvlocate",
	Short: "Locate the native libraries and resource files of the voice engines",
	Long: `pvlocate detects the host platform and resolves where the speech-to-intent
(rhino) and wake-word (porcupine) engines keep their prebuilt native libraries,
model files, context files and keyword files inside an install tree.

The install root defaults to the directory holding the pvlocate binary and
can be changed with --root or PVLOCATE_ROOT.`,
	Version:       buildinfo.Full(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetDefault(log.NewCLI(os.Stderr, determineLogLevel()))
		return validateFormat(formatFlag)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Log which platform and layout were used")
	pf.BoolVar(&debugFlag, "debug", false, "Log every classification rule and scanned file")
	pf.StringVar(&rootFlag, "root", "", "Install root of the engines (default: $PVLOCATE_ROOT or the binary's directory)")
	pf.StringVar(&osFlag, "os", "", "Resolve for this operating system instead of the host (darwin, linux, windows)")
	pf.StringVar(&machineFlag, "machine", "", "Resolve for this machine variant instead of detecting it (e.g. x86_64, cortex-a7, beaglebone)")
	pf.StringVar(&cpuInfoFlag, "cpuinfo", "", "Read the CPU descriptor from this file instead of /proc/cpuinfo")
	pf.StringVar(&layoutFlag, "layout", "", "TOML file replacing the built-in install layout")
	pf.StringVarP(&formatFlag, "format", "o", formatText, "Output format: text, json, toml or yaml")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(contextsCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// isTruthy reports whether an environment value enables a setting.
func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// determineLogLevel picks the log level from the verbosity flags, falling
// back to PVLOCATE_DEBUG, PVLOCATE_VERBOSE and PVLOCATE_QUIET only when no
// flag was given. Debug beats verbose and verbose beats quiet.
func determineLogLevel() slog.Level {
	debug, verbose, quiet := debugFlag, verboseFlag, quietFlag
	if !debug && !verbose && !quiet {
		debug = isTruthy(os.Getenv("PVLOCATE_DEBUG"))
		verbose = isTruthy(os.Getenv("PVLOCATE_VERBOSE"))
		quiet = isTruthy(os.Getenv("PVLOCATE_QUIET"))
	}

	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		exitWithCode(exitCodeFor(err))
	}
}

// printError reports err on w. The install root is only mentioned once a
// command got far enough to resolve it.
func printError(w io.Writer, err error) {
	if resolvedRoot == "" {
		errmsg.Fprint(w, err)
		return
	}
	errmsg.FprintContext(w, err, &errmsg.ErrorContext{Root: resolvedRoot})
}
