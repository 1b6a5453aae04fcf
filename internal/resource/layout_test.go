package resource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukumogami/pvlocate/internal/platform"
)

// supportedIdentities covers every (OS, machine) pair with a library build.
var supportedIdentities = []platform.Identity{
	platform.NewIdentity(platform.Darwin, "x86_64"),
	platform.NewIdentity(platform.Darwin, "arm64"),
	platform.NewIdentity(platform.Windows, "AMD64"),
	platform.NewIdentity(platform.Linux, platform.MachineX86_64),
	platform.NewIdentity(platform.Linux, platform.MachineARM11),
	platform.NewIdentity(platform.Linux, platform.MachineCortexA7),
	platform.NewIdentity(platform.Linux, platform.MachineCortexA53),
	platform.NewIdentity(platform.Linux, platform.MachineBeagleBone),
}

var extensionByOS = map[platform.OS]string{
	platform.Darwin:  ".dylib",
	platform.Linux:   ".so",
	platform.Windows: ".dll",
}

func TestDefaultLayout_LibraryExtensions(t *testing.T) {
	layout := DefaultLayout()
	for _, id := range supportedIdentities {
		for _, engine := range Engines {
			t.Run(id.String()+"/"+string(engine), func(t *testing.T) {
				p, err := layout.LibraryPath(engine, id)
				require.NoError(t, err)
				assert.True(t, strings.HasSuffix(p, extensionByOS[id.OS()]), "%s has wrong extension", p)
			})
		}
	}
}

func TestDefaultLayout_LibraryPaths(t *testing.T) {
	tests := []struct {
		id     platform.Identity
		engine Engine
		want   string
	}{
		{platform.NewIdentity(platform.Darwin, "arm64"), Speech, "lib/mac/x86_64/libpv_rhino.dylib"},
		{platform.NewIdentity(platform.Windows, "AMD64"), Speech, "lib/windows/libpv_rhino.dll"},
		{platform.NewIdentity(platform.Linux, "x86_64"), Speech, "lib/linux/x86_64/libpv_rhino.so"},
		{platform.NewIdentity(platform.Linux, "cortex-a7"), Speech, "lib/raspberry-pi/cortex-a7/libpv_rhino.so"},
		{platform.NewIdentity(platform.Linux, "beaglebone"), Speech, "lib/beaglebone/libpv_rhino.so"},
		{platform.NewIdentity(platform.Darwin, "x86_64"), WakeWord, "resources/porcupine/lib/mac/x86_64/libpv_porcupine.dylib"},
		{platform.NewIdentity(platform.Linux, "arm11"), WakeWord, "resources/porcupine/lib/raspberry-pi/arm11/libpv_porcupine.so"},
		{platform.NewIdentity(platform.Windows, "x86"), WakeWord, "resources/porcupine/lib/windows/libpv_porcupine.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String()+"/"+string(tt.engine), func(t *testing.T) {
			got, err := DefaultLayout().LibraryPath(tt.engine, tt.id)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestDefaultLayout_UnsupportedLinuxMachine(t *testing.T) {
	_, err := DefaultLayout().LibraryPath(Speech, platform.NewIdentity(platform.Linux, "aarch64"))

	var platErr *platform.UnsupportedPlatformError
	require.ErrorAs(t, err, &platErr)
	assert.Equal(t, "aarch64", platErr.Machine)
}

func TestDefaultLayout_ModelPathsArePlatformIndependent(t *testing.T) {
	layout := DefaultLayout()

	rhino, err := layout.ModelPath(Speech)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("lib/common/rhino_params.pv"), rhino)

	porcupine, err := layout.ModelPath(WakeWord)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("resources/porcupine/lib/common/porcupine_params.pv"), porcupine)
}

func TestDefaultLayout_Subdir(t *testing.T) {
	tests := []struct {
		id   platform.Identity
		want string
	}{
		{platform.NewIdentity(platform.Darwin, "x86_64"), "mac"},
		{platform.NewIdentity(platform.Linux, "x86_64"), "linux"},
		{platform.NewIdentity(platform.Linux, "arm11"), "raspberrypi"},
		{platform.NewIdentity(platform.Linux, "cortex-a53"), "raspberrypi"},
		{platform.NewIdentity(platform.Linux, "beaglebone"), "beaglebone"},
		{platform.NewIdentity(platform.Windows, "AMD64"), "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			for _, c := range Collections {
				got, err := ResolveNamedResourceDirectory(c, tt.id)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveNamedResourceDirectory_Errors(t *testing.T) {
	_, err := ResolveNamedResourceDirectory("wallpapers", platform.NewIdentity(platform.Linux, "x86_64"))
	assert.Error(t, err)

	_, err = ResolveNamedResourceDirectory(Contexts, platform.NewIdentity(platform.Linux, "riscv64"))
	var platErr *platform.UnsupportedPlatformError
	assert.True(t, errors.As(err, &platErr), "expected UnsupportedPlatformError, got %v", err)
}

func TestDefaultLayout_NamedDir(t *testing.T) {
	id := platform.NewIdentity(platform.Linux, "cortex-a7")
	layout := DefaultLayout()

	dir, err := layout.NamedDir(Keywords, id)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("resources/porcupine/resources/keyword_files/raspberrypi"), dir)
	assert.Equal(t, "_compressed", layout.Exclude(Keywords))
	assert.Empty(t, layout.Exclude(Contexts))
}

func TestParseLayout_Invalid(t *testing.T) {
	valid := string(defaultLayoutTOML)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"syntax", "[libraries", "failed to parse layout"},
		{"unknown key", valid + "\n[extras]\nfoo = \"bar\"\n", "unknown layout keys"},
		{"missing engine", strings.Replace(valid, "[libraries.porcupine]", "[libraries.other]", 1), `no libraries for engine "porcupine"`},
		{"missing class", strings.Replace(valid, `beaglebone = "lib/beaglebone/libpv_rhino.so"`, "", 1), `has no library for "beaglebone"`},
		{"absolute path", strings.Replace(valid, `rhino = "lib/common/rhino_params.pv"`, `rhino = "/etc/rhino_params.pv"`, 1), "must be relative"},
		{"escaping path", strings.Replace(valid, `base = "resources/contexts"`, `base = "../contexts"`, 1), "escapes the install root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	data := strings.ReplaceAll(string(defaultLayoutTOML), "libpv_rhino", "libpv_rhino_v2")
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	layout, err := LoadLayout(path)
	require.NoError(t, err)

	p, err := layout.LibraryPath(Speech, platform.NewIdentity(platform.Linux, "x86_64"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("lib/linux/x86_64/libpv_rhino_v2.so"), p)
}

func TestLoadLayout_Missing(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
