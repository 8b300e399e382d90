package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("levels/world.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = FormatFromPath("levels/world.yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("levels/world")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshalUnmarshalBothFormats(t *testing.T) {
	doc := map[string]any{
		"type":  "stage",
		"name":  "A",
		"start": 0.0,
		"begin": []any{1.0, 2.0, 3.0},
	}
	for _, f := range []Format{FormatJSON, FormatYAML} {
		data, err := Marshal(f, doc)
		require.NoError(t, err, f)

		var out map[string]any
		require.NoError(t, Unmarshal(f, data, &out), f)
		assert.Equal(t, "stage", out["type"], f)
		assert.Equal(t, "A", out["name"], f)
		assert.Len(t, out["begin"], 3, f)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	var out map[string]any
	assert.ErrorIs(t, Unmarshal(FormatJSON, []byte("  \n"), &out), ErrEmptyDocument)
}

func TestFingerprintIgnoresKeyOrderAndSource(t *testing.T) {
	a := map[string]any{"a": 1.0, "b": "x"}
	b := map[string]any{"b": "x", "a": 1.0}
	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)

	data, err := Marshal(FormatYAML, a)
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, Unmarshal(FormatYAML, data, &fromYAML))
	fy, err := Fingerprint(fromYAML)
	require.NoError(t, err)
	assert.Equal(t, fa, fy)

	fc, err := Fingerprint(map[string]any{"a": 2.0, "b": "x"})
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)
}
