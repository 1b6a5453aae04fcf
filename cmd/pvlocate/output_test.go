package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukumogami/pvlocate/internal/resource"
)

func samplePaths() *resource.Paths {
	return &resource.Paths{
		RhinoLibrary:     "/opt/pv/lib/linux/x86_64/libpv_rhino.so",
		PorcupineLibrary: "/opt/pv/resources/porcupine/lib/linux/x86_64/libpv_porcupine.so",
		RhinoModel:       "/opt/pv/lib/common/rhino_params.pv",
		PorcupineModel:   "/opt/pv/resources/porcupine/lib/common/porcupine_params.pv",
		ContextFile:      "/opt/pv/resources/contexts/linux/coffee_linux.rhn",
		KeywordFile:      "/opt/pv/resources/porcupine/resources/keyword_files/linux/hey pico_linux.ppn",
	}
}

func TestWriteOutputJSON(t *testing.T) {
	p := samplePaths()
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatJSON, p, p.Entries(), false))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, p.RhinoLibrary, got["rhino_library"])
	assert.Equal(t, p.KeywordFile, got["keyword_file"])
	assert.Len(t, got, 6)
}

func TestWriteOutputTOML(t *testing.T) {
	p := samplePaths()
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatTOML, p, p.Entries(), false))

	assert.Contains(t, buf.String(), `rhino_model = "/opt/pv/lib/common/rhino_params.pv"`)
}

func TestWriteOutputYAML(t *testing.T) {
	p := samplePaths()
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatYAML, p, p.Entries(), false))

	assert.Contains(t, buf.String(), "rhino_model: /opt/pv/lib/common/rhino_params.pv\n")
	assert.Contains(t, buf.String(), "keyword_file: /opt/pv/resources/porcupine/resources/keyword_files/linux/hey pico_linux.ppn\n")
}

func TestWriteOutputTextPlain(t *testing.T) {
	p := samplePaths()
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatText, p, p.Entries(), false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "rhino_library="+p.RhinoLibrary, lines[0])
	assert.Equal(t, "keyword_file="+p.KeywordFile, lines[5])
}

func TestWriteOutputTextAligned(t *testing.T) {
	entries := []resource.Entry{
		{Name: "os", Path: "Linux"},
		{Name: "machine", Path: "cortex-a7"},
	}
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatText, nil, entries, true))

	assert.Equal(t, "os       Linux\nmachine  cortex-a7\n", buf.String())
}

func TestWriteOutputMapping(t *testing.T) {
	m := map[string]string{
		"smart lighting": "/opt/pv/resources/contexts/linux/smart lighting_linux.rhn",
		"coffee":         "/opt/pv/resources/contexts/linux/coffee_linux.rhn",
	}

	var text bytes.Buffer
	require.NoError(t, writeOutput(&text, formatText, m, mappingEntries(m), false))
	assert.Equal(t,
		"coffee=/opt/pv/resources/contexts/linux/coffee_linux.rhn\n"+
			"smart lighting=/opt/pv/resources/contexts/linux/smart lighting_linux.rhn\n",
		text.String())

	var tomlOut bytes.Buffer
	require.NoError(t, writeOutput(&tomlOut, formatTOML, m, mappingEntries(m), false))
	assert.Contains(t, tomlOut.String(), `"smart lighting" = `)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range outputFormats {
		assert.NoError(t, validateFormat(f), f)
	}

	err := validateFormat("xml")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, exitCodeFor(err))
}
