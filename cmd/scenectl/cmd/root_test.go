package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

const level = `
type: world
name: level-1
children:
  - type: stage
    name: intro
    start: 0
    finish: 10
  - type: stage
    name: boss
    start: 10
    finish: 25
    children:
      - type: actor
        name: ogre
        components:
          - type: transform
            position: [5, 0, 2]
          - type: tag
            label: enemy
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { log.Install(nil) })
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--log-level", "silent"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeLevel(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", writeLevel(t, "level.yaml", level))
	require.NoError(t, err)

	assert.Contains(t, out, `world "level-1"`)
	assert.Contains(t, out, `  stage "intro" active [0, 10)`)
	assert.Contains(t, out, `  stage "boss" [10, 25)`)
	assert.Contains(t, out, `    actor "ogre" {transform, tag}`)

	out, err = run(t, "inspect", "--depth", "0", writeLevel(t, "level.yaml", level))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestInspectLenientReportsSkipped(t *testing.T) {
	path := writeLevel(t, "level.yaml", level+"          - type: glow\n")

	_, err := run(t, "inspect", path)
	assert.ErrorIs(t, err, scene.ErrUnknownType)

	out, err := run(t, "--lenient", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped glow under")
}

func TestConvertRoundTrip(t *testing.T) {
	src := writeLevel(t, "level.yaml", level)
	dir := t.TempDir()
	asJSON := filepath.Join(dir, "level.json")
	asYAML := filepath.Join(dir, "copy.yml")

	_, err := run(t, "convert", src, asJSON)
	require.NoError(t, err)
	_, err = run(t, "convert", asJSON, asYAML)
	require.NoError(t, err)

	data, err := os.ReadFile(asJSON)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("{")))

	out, err := run(t, "fingerprint", asJSON, asYAML)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Fields(lines[0])[0], strings.Fields(lines[1])[0])
}

func TestConvertToStdout(t *testing.T) {
	out, err := run(t, "convert", "--format", "yaml", writeLevel(t, "level.json", `{"type": "entity", "name": "solo"}`), "-")
	require.NoError(t, err)
	assert.Contains(t, out, "name: solo")
	assert.Contains(t, out, "type: entity")
}

func TestValidate(t *testing.T) {
	good := writeLevel(t, "good.yaml", level)
	bad := writeLevel(t, "bad.json", `{"type": "nothing"}`)

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+good+": 4 nodes, 0 skipped")

	out, err = run(t, "--lenient", "validate", good, bad)
	assert.ErrorIs(t, err, scene.ErrUnknownType)
	assert.Contains(t, out, "ok "+good)
}

func TestActivate(t *testing.T) {
	path := writeLevel(t, "level.yaml", level)
	out, err := run(t, "activate", path, "--stage", "boss")
	require.NoError(t, err)
	assert.Contains(t, out, "active stage: intro -> boss")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	n, err := scene.Unmarshal(encoding.FormatYAML, data)
	require.NoError(t, err)
	assert.Equal(t, "boss", n.(*scene.World).ActiveStage().Base().Name())

	target := filepath.Join(t.TempDir(), "out.json")
	out, err = run(t, "activate", path, "--progress", "3", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "active stage: boss -> intro")
	assert.FileExists(t, target)
}

func TestActivateErrors(t *testing.T) {
	path := writeLevel(t, "level.yaml", level)

	_, err := run(t, "activate", path)
	assert.Error(t, err)
	_, err = run(t, "activate", path, "--stage", "missing")
	assert.Error(t, err)
	_, err = run(t, "activate", path, "--progress", "99")
	assert.Error(t, err)

	_, err = run(t, "activate", writeLevel(t, "actor.json", `{"type": "actor"}`), "--stage", "boss")
	assert.Error(t, err)
}
