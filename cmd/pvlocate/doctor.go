package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/pvlocate/internal/errmsg"
	"github.com/tsukumogami/pvlocate/internal/platform"
	"github.com/tsukumogami/pvlocate/internal/resource"
)

var (
	doctorContextFlag string
	doctorKeywordFlag string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the install tree holds every engine file",
	Long: `Verify that the install tree is complete for this platform: both native
libraries, both model files, and the selected context and keyword files.

Every check runs even after a failure. Exits with a non-zero status if any
check fails, making it suitable for use as a gate in scripts and CI:

  pvlocate doctor || exit 1`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := newLocator(cfg)
		if err != nil {
			return err
		}
		sel, err := loadSelection(cfg, doctorContextFlag, doctorKeywordFlag)
		if err != nil {
			return err
		}

		fmt.Printf("Checking install tree for %s...\n", loc.Identity())
		if !runDoctor(os.Stdout, os.Stderr, loc, sel) {
			return errDoctorFailed
		}
		printInfo("All checks passed.")
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorContextFlag, "context", "", "Context to check instead of the configured one")
	doctorCmd.Flags().StringVar(&doctorKeywordFlag, "keyword", "", "Keyword to check instead of the configured one")
}

// detectHostLibc reports the host's C library, or false when the host is
// not Linux and the question does not apply.
var detectHostLibc = func() (platform.Libc, bool) {
	if runtime.GOOS != "linux" {
		return "", false
	}
	return platform.DetectLibc(), true
}

// doctorCheck is one line of doctor output: a label and the path it checks.
type doctorCheck struct {
	label   string
	resolve func() (string, error)
}

// runDoctor prints one line per check to out and failure details to errOut.
// It reports whether every check passed.
func runDoctor(out, errOut io.Writer, loc *resource.Locator, sel resource.Selection) bool {
	checks := []doctorCheck{
		{"Install root", func() (string, error) { return loc.Root(), checkDir(loc.Root()) }},
	}
	for _, engine := range resource.Engines {
		checks = append(checks, doctorCheck{string(engine) + " library", func() (string, error) {
			return resolveFile(loc.LibraryPath(engine))
		}})
	}
	for _, engine := range resource.Engines {
		checks = append(checks, doctorCheck{string(engine) + " model", func() (string, error) {
			return resolveFile(loc.ModelPath(engine))
		}})
	}
	checks = append(checks,
		doctorCheck{fmt.Sprintf("context %q", sel.Context), func() (string, error) {
			return loc.NamedResource(resource.Contexts, sel.Context)
		}},
		doctorCheck{fmt.Sprintf("keyword %q", sel.Keyword), func() (string, error) {
			return loc.NamedResource(resource.Keywords, sel.Keyword)
		}},
	)

	if loc.Identity().OS() == platform.Linux {
		if libc, ok := detectHostLibc(); ok {
			checks = append(checks, doctorCheck{"C library", func() (string, error) {
				if libc != platform.EngineLibc {
					return string(libc), fmt.Errorf("prebuilt Linux libraries link against %s, host uses %s", platform.EngineLibc, libc)
				}
				return string(libc), nil
			}})
		}
	}

	passed := true
	for _, c := range checks {
		path, err := c.resolve()
		if path != "" {
			fmt.Fprintf(out, "  %s: %s", c.label, path)
		} else {
			fmt.Fprintf(out, "  %s", c.label)
		}
		if err != nil {
			fmt.Fprintln(out, " ... FAIL")
			errmsg.FprintContext(errOut, err, &errmsg.ErrorContext{Root: loc.Root()})
			passed = false
			continue
		}
		fmt.Fprintln(out, " ... ok")
	}
	return passed
}

// resolveFile passes a resolved path through after checking it is a regular file.
func resolveFile(path string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return path, err
	}
	if !info.Mode().IsRegular() {
		return path, fmt.Errorf("%s is not a regular file", path)
	}
	return path, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
