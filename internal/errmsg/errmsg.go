// Package errmsg provides enhanced error message formatting with actionable suggestions.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/tsukumogami/pvlocate/internal/platform"
	"github.com/tsukumogami/pvlocate/internal/resource"
)

// ErrorContext provides additional context for error formatting
type ErrorContext struct {
	Root string // install root that was searched, if known
}

// Format returns a formatted error message with possible causes and suggestions.
// The context parameter is optional - pass nil for generic formatting.
func Format(err error, ctx *ErrorContext) string {
	if err == nil {
		return ""
	}

	var platErr *platform.UnsupportedPlatformError
	if errors.As(err, &platErr) {
		return formatUnsupportedPlatform(platErr)
	}

	var cpuErr *platform.UnsupportedCPUError
	if errors.As(err, &cpuErr) {
		return formatUnsupportedCPU(cpuErr)
	}

	var missing *resource.MissingResourceError
	if errors.As(err, &missing) {
		return formatMissingResource(missing)
	}

	var dup *resource.DuplicateResourceError
	if errors.As(err, &dup) {
		return formatDuplicateResource(dup)
	}

	if errors.Is(err, fs.ErrNotExist) {
		return formatNotFound(err, ctx)
	}

	if errors.Is(err, fs.ErrPermission) {
		return formatPermission(err)
	}

	// Return original error for unrecognized types
	return err.Error()
}

// Fprint writes the formatted error to w, prefixed with "Error: ".
func Fprint(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", strings.TrimRight(Format(err, nil), "\n"))
}

// FprintContext is Fprint with formatting context.
func FprintContext(w io.Writer, err error, ctx *ErrorContext) {
	fmt.Fprintf(w, "Error: %s\n", strings.TrimRight(Format(err, ctx), "\n"))
}

func formatUnsupportedPlatform(err *platform.UnsupportedPlatformError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	if err.Machine == "" {
		sb.WriteString("  - The engines ship no libraries for this operating system\n")
	} else {
		sb.WriteString("  - The engines ship no libraries for this CPU\n")
		sb.WriteString("  - A machine override (--machine, PVLOCATE_MACHINE) names an unknown variant\n")
	}

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - " + err.Suggestion() + "\n")
	sb.WriteString("  - Run 'pvlocate detect' to see what was detected\n")

	return sb.String()
}

func formatUnsupportedCPU(err *platform.UnsupportedCPUError) string {
	var sb strings.Builder
	sb.WriteString("unsupported CPU\n")

	sb.WriteString("\nDetected:\n")
	fmt.Fprintf(&sb, "  hardware:   %s\n", valueOrNone(err.Hardware))
	fmt.Fprintf(&sb, "  model name: %s\n", valueOrNone(err.Model))

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The board is not a supported Raspberry Pi or BeagleBone\n")
	sb.WriteString("  - The kernel does not report a Hardware line in /proc/cpuinfo\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - " + err.Suggestion() + "\n")
	sb.WriteString("  - Run with --debug to see the full CPU descriptor\n")

	return sb.String()
}

func formatMissingResource(err *resource.MissingResourceError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Typo in the resource name\n")
	sb.WriteString("  - The resource was not built for this platform\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - " + err.Suggestion() + "\n")
	switch err.Collection {
	case resource.Contexts:
		sb.WriteString("  - Run 'pvlocate contexts' to list contexts, then 'pvlocate config set context <name>'\n")
	case resource.Keywords:
		sb.WriteString("  - Run 'pvlocate keywords' to list keywords, then 'pvlocate config set keyword <name>'\n")
	}

	return sb.String()
}

func formatDuplicateResource(err *resource.DuplicateResourceError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - " + err.Suggestion() + "\n")

	return sb.String()
}

func formatNotFound(err error, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The install root does not point at the engines' install tree\n")
	sb.WriteString("  - The tree is incomplete for this platform\n")

	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.Root != "" {
		fmt.Fprintf(&sb, "  - Check the install root: %s\n", ctx.Root)
	}
	sb.WriteString("  - Set PVLOCATE_ROOT or pass --root to select the install tree\n")
	sb.WriteString("  - Run 'pvlocate doctor' to check every path\n")

	return sb.String()
}

func formatPermission(err error) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The install tree is owned by a different user\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check permissions on the install tree: ls -la <root>\n")

	return sb.String()
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return strings.TrimSpace(s)
}
