package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tsukumogami/pvlocate/internal/resource"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatTOML = "toml"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatTOML, formatYAML}

func validateFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return usageError{fmt.Errorf("invalid --format %q: must be one of %v", format, outputFormats)}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writeOutput renders value in the structured formats and entries in text.
// Text output is an aligned two-column table on a terminal and plain
// name=path lines otherwise, so pipes get something easy to split.
func writeOutput(w io.Writer, format string, value any, entries []resource.Entry, aligned bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatTOML:
		return toml.NewEncoder(w).Encode(value)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		if aligned {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Path)
			}
			return tw.Flush()
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s=%s\n", e.Name, e.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		return validateFormat(format)
	}
}

// printOutput writes to stdout using the global --format.
func printOutput(value any, entries []resource.Entry) error {
	return writeOutput(os.Stdout, formatFlag, value, entries, stdoutIsTerminal())
}

// mappingEntries lists a name-to-path mapping in name order.
func mappingEntries(m map[string]string) []resource.Entry {
	names := resource.Names(m)
	entries := make([]resource.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, resource.Entry{Name: name, Path: m[name]})
	}
	return entries
}
