package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/tsukumogami/pvlocate/internal/testutil"
)

// treeShape returns the library directory, resource subdirectory and library
// extension for an "os/machine" platform string such as "linux/cortex-a7".
func treeShape(platform string) (libDir, subdir, ext string, err error) {
	goos, machine, ok := strings.Cut(platform, "/")
	if !ok {
		return "", "", "", fmt.Errorf("platform %q is not os/machine", platform)
	}

	switch goos {
	case "darwin":
		return "mac/x86_64", "mac", "dylib", nil
	case "windows":
		return "windows", "windows", "dll", nil
	case "linux":
		switch machine {
		case "x86_64":
			return "linux/x86_64", "linux", "so", nil
		case "beaglebone":
			return "beaglebone", "beaglebone", "so", nil
		case "arm11", "cortex-a7", "cortex-a53":
			return "raspberry-pi/" + machine, "raspberrypi", "so", nil
		}
	}
	return "", "", "", fmt.Errorf("no install tree shape for %q", platform)
}

// anInstallTreeFor writes a complete install tree for one platform.
func anInstallTreeFor(ctx context.Context, platform string) (context.Context, error) {
	state := getState(ctx)
	libDir, subdir, ext, err := treeShape(platform)
	if err != nil {
		return ctx, err
	}

	for _, rel := range testutil.InstallTree(libDir, subdir, ext) {
		path := filepath.Join(state.installRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return ctx, err
		}
		if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

func theFileIsRemovedFromTheInstallTree(ctx context.Context, rel string) (context.Context, error) {
	state := getState(ctx)
	return ctx, os.Remove(filepath.Join(state.installRoot, filepath.FromSlash(rel)))
}

// aCPUDescriptor writes a cpuinfo file and points PVLOCATE_CPUINFO at it.
func aCPUDescriptor(ctx context.Context, doc *godog.DocString) (context.Context, error) {
	state := getState(ctx)
	path := filepath.Join(state.workDir, "cpuinfo")
	if err := os.WriteFile(path, []byte(doc.Content+"\n"), 0o644); err != nil {
		return ctx, err
	}
	state.env = append(state.env, "PVLOCATE_CPUINFO="+path)
	return ctx, nil
}

func theEnvironmentVariableIs(ctx context.Context, name, value string) (context.Context, error) {
	state := getState(ctx)
	state.env = append(state.env, name+"="+value)
	return ctx, nil
}

// expand replaces <root> and <home> with the scenario's directories and
// unescapes \" sequences.
func (s *testState) expand(text string) string {
	text = strings.ReplaceAll(text, `\"`, `"`)
	text = strings.ReplaceAll(text, "<root>", s.installRoot)
	return strings.ReplaceAll(text, "<home>", s.homeDir)
}

// iRun executes a command string, replacing "pvlocate" with the test binary path.
func iRun(ctx context.Context, command string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(state.expand(command))
	if len(args) > 0 && args[0] == "pvlocate" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = state.workDir

	// Drop inherited PVLOCATE_* settings so the host cannot leak into results
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "PVLOCATE_") {
			env = append(env, kv)
		}
	}
	env = append(env,
		"PVLOCATE_HOME="+state.homeDir,
		"PVLOCATE_ROOT="+state.installRoot,
	)
	cmd.Env = append(env, state.env...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	text = state.expand(text)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	text = state.expand(text)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	text = state.expand(text)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theErrorOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	text = state.expand(text)
	if strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr not to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theFileExists(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.homeDir, path)
	if _, err := os.Lstat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("expected file %q to exist", fullPath)
	}
	return nil
}

func theFileDoesNotExist(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.homeDir, path)
	if _, err := os.Lstat(fullPath); err == nil {
		return fmt.Errorf("expected file %q not to exist", fullPath)
	}
	return nil
}
