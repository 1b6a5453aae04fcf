// Package testutil builds throwaway install trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates each file (slash-separated, relative to root) along with
// its parent directories. File contents are the relative path itself, which
// makes mix-ups visible when a test reads the wrong file.
func WriteTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// InstallTree returns the files of a complete single-platform install tree.
// libDir is the library subdirectory below lib/ (e.g. "linux/x86_64" or
// "raspberry-pi/cortex-a7"), subdir is the named resource directory
// (e.g. "linux") and ext is the library extension without the dot.
func InstallTree(libDir, subdir, ext string) []string {
	return []string{
		"lib/" + libDir + "/libpv_rhino." + ext,
		"resources/porcupine/lib/" + libDir + "/libpv_porcupine." + ext,
		"lib/common/rhino_params.pv",
		"resources/porcupine/lib/common/porcupine_params.pv",
		"resources/contexts/" + subdir + "/coffee_" + subdir + ".rhn",
		"resources/contexts/" + subdir + "/smart lighting_" + subdir + ".rhn",
		"resources/porcupine/resources/keyword_files/" + subdir + "/hey pico_" + subdir + ".ppn",
		"resources/porcupine/resources/keyword_files/" + subdir + "/hey pico_" + subdir + "_compressed.ppn",
		"resources/porcupine/resources/keyword_files/" + subdir + "/porcupine_" + subdir + ".ppn",
	}
}

// NewInstallTree writes InstallTree into a fresh temporary directory and
// returns its path.
func NewInstallTree(t *testing.T, libDir, subdir, ext string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, InstallTree(libDir, subdir, ext)...)
	return root
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists checks if a file exists at the given path
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if !FileExists(path) {
		t.Errorf("file does not exist: %s", path)
	}
}
