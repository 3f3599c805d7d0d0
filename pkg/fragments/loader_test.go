package fragments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFragment(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadConcatenatesFragmentsInDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "01-gt3.json",
		`[{"className":"GT3","standings":[{"driverName":"Alice","championshipPoints":10}]}]`)
	writeFragment(t, dir, "02-gt4.json",
		`[{"className":"GT4","standings":[{"driverName":"Dave","championshipPoints":5}]},
		  {"className":"GT3","standings":[{"driverName":"Bob","championshipPoints":9}]}]`)

	classes, files, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, files)
	require.Len(t, classes, 3)
	assert.Equal(t, "GT3", classes[0].ClassName)
	assert.Equal(t, "Alice", classes[0].Standings[0].DriverName)
	assert.Equal(t, "GT4", classes[1].ClassName)
	assert.Equal(t, "GT3", classes[2].ClassName)
}

func TestLoadIgnoresNonFragmentFiles(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "standings.json", `[{"className":"GT3","standings":[]}]`)
	writeFragment(t, dir, "notes.txt", `not a fragment`)
	writeFragment(t, dir, "report.md", `# neither is this`)

	classes, files, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, files)
	assert.Len(t, classes, 1)
}

func TestLoadEmptyDirectory(t *testing.T) {
	classes, files, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, files)
	assert.Empty(t, classes)
}

func TestLoadMalformedFragmentIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "01-good.json", `[{"className":"GT3","standings":[]}]`)
	writeFragment(t, dir, "02-bad.json", `{"this is": "not a fragment"`)

	_, _, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "02-bad.json")
}

func TestLoadMissingDirectoryIsFatal(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestLoadDecodesNullablePenaltyPoints(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "races.json",
		`[{"className":"GT3","standings":[{"driverName":"Alice","races":[
			{"position":1,"totalPoints":10,"penaltyPoints":null},
			{"position":2,"totalPoints":8,"penaltyPoints":1.5}
		]}]}]`)

	classes, _, err := Load(dir)
	require.NoError(t, err)
	races := classes[0].Standings[0].Races
	require.Len(t, races, 2)
	assert.Nil(t, races[0].PenaltyPoints)
	require.NotNil(t, races[1].PenaltyPoints)
	assert.Equal(t, 1.5, *races[1].PenaltyPoints)
}
