package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/retouch"
)

func names(presets []Preset) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Name
	}
	return out
}

func TestSaveAndList(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Save("Warm", retouch.Params{Temperature: 40}))
	require.NoError(t, s.Save("  Cool  ", retouch.Params{Temperature: -40}))

	assert.Equal(t, []string{"Warm", "Cool"}, names(s.List()))
	assert.Equal(t, 2, s.Len())

	p, err := s.Get("cool")
	require.NoError(t, err)
	assert.Equal(t, -40.0, p.Params.Temperature)
}

func TestSaveReplacesCaseInsensitively(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Save("Film", retouch.Params{Contrast: 0.1}))
	require.NoError(t, s.Save("Mono", retouch.Params{Saturation: -1}))
	require.NoError(t, s.Save("FILM", retouch.Params{Contrast: 0.3}))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "FILM", list[0].Name, "replacement keeps its position")
	assert.Equal(t, 0.3, list[0].Params.Contrast)
}

func TestSaveNormalisesUnicode(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Save("Cafe\u0301", retouch.Params{Hue: 10}))
	require.NoError(t, s.Save("CAF\u00c9", retouch.Params{Hue: 20}))

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "CAF\u00c9", list[0].Name)
	assert.Equal(t, 20.0, list[0].Params.Hue)
}

func TestSaveRejects(t *testing.T) {
	s := NewMemory()
	assert.ErrorIs(t, s.Save("   ", retouch.Params{}), ErrEmptyName)
	assert.ErrorIs(t, s.Save("bad", retouch.Params{Brightness: 999}), retouch.ErrInvalidParameter)
	assert.Equal(t, 0, s.Len())
}

func TestDelete(t *testing.T) {
	s := NewMemory()
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, s.Save(n, retouch.Params{}))
	}
	require.NoError(t, s.Delete(1))
	assert.Equal(t, []string{"a", "c"}, names(s.List()))

	assert.ErrorIs(t, s.Delete(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Delete(-1), ErrIndexOutOfRange)

	_, err := s.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListIsACopy(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Save("one", retouch.Params{Blur: 1}))
	list := s.List()
	list[0].Name = "changed"
	assert.Equal(t, "one", s.List()[0].Name)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, path, s.Path())

	want := retouch.Params{
		Brightness: 10,
		Curves:     retouch.CurveGammas{R: 1.2, G: 1, B: 0.9},
		Levels:     retouch.LevelsParams{Black: 5, White: 250, Gamma: 1.1},
		Vignette:   retouch.VignetteParams{Strength: 30, Radius: 60},
	}
	require.NoError(t, s.Save("Look", want))
	require.NoError(t, s.Save("Other", retouch.Params{Sharpen: 0.5}))
	require.NoError(t, s.Delete(1))

	reopened, err := Open(path)
	require.NoError(t, err)
	list := reopened.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Look", list[0].Name)
	assert.Equal(t, want, list[0].Params)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestOpenParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := `presets:
  - name: Warm film
    params:
      temperature: 40
      contrast: 0.15
      vignette:
        strength: 30
        radius: 60
  - name: " warm FILM "
    params:
      noise_reduction: 20
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	list := s.List()
	require.Len(t, list, 1, "duplicate names collapse")
	assert.Equal(t, "warm FILM", list[0].Name)
	assert.Equal(t, 20.0, list[0].Params.NoiseReduction)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("presets: [name"), 0o600))
	_, err := Open(bad)
	assert.Error(t, err)

	blank := filepath.Join(dir, "blank.yaml")
	require.NoError(t, os.WriteFile(blank, []byte("presets:\n  - name: \"  \"\n"), 0o600))
	_, err = Open(blank)
	assert.ErrorIs(t, err, ErrEmptyName)
}
