package inputs

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedManifest(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)

	m := s.Manifest()
	require.NotEmpty(t, m.Days)
	for _, d := range m.Days {
		assert.NotEmpty(t, d.Title, "day %d", d.Day)
		for _, sample := range d.Samples {
			text, answer, err := s.Sample(d.Day, sample.Part)
			require.NoError(t, err, "day %d part %d", d.Day, sample.Part)
			assert.NotEmpty(t, text)
			assert.Equal(t, sample.Answer, answer)
		}
	}

	assert.Equal(t, "Guard Gallivant", s.Title(6))
	assert.Empty(t, s.Title(25))
}

func TestSample(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)

	text, answer, err := s.Sample(3, 2)
	require.NoError(t, err)
	assert.Contains(t, text, "don't()")
	assert.Equal(t, 48, answer)

	_, _, err = s.Sample(25, 1)
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, _, err = s.Sample(1, 3)
	assert.ErrorIs(t, err, ErrUnknownSample)
}

func TestInput(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.yaml": {Data: []byte(`
days:
  - day: 1
    title: One
    samples:
      - {part: 1, file: sample.txt, answer: 3}
  - day: 2
    title: Two
    samples:
      - {part: 1, file: sample.txt, answer: 4}
  - day: 3
    title: Three
    samples:
      - {part: 1, file: sample.txt, answer: 5}
      - {part: 2, file: sample2.txt, answer: 6}
`)},
		"day01/sample.txt":  {Data: []byte("sample one")},
		"day02/sample.txt":  {Data: []byte("sample two")},
		"day02/input.txt":   {Data: []byte("embedded two")},
		"day03/sample.txt":  {Data: []byte("sample three")},
		"day03/sample2.txt": {Data: []byte("second sample three")},
	}

	t.Run("Falls back to the first sample", func(t *testing.T) {
		s, err := NewFromFS(fsys, "")
		require.NoError(t, err)

		text, err := s.Input(1, 1)
		require.NoError(t, err)
		assert.Equal(t, "sample one", text)
	})

	t.Run("Falls back to the sample recorded for the part", func(t *testing.T) {
		s, err := NewFromFS(fsys, "")
		require.NoError(t, err)

		text, err := s.Input(3, 1)
		require.NoError(t, err)
		assert.Equal(t, "sample three", text)

		text, err = s.Input(3, 2)
		require.NoError(t, err)
		assert.Equal(t, "second sample three", text)
	})

	t.Run("Part without a sample uses the first sample", func(t *testing.T) {
		s, err := NewFromFS(fsys, "")
		require.NoError(t, err)

		text, err := s.Input(1, 2)
		require.NoError(t, err)
		assert.Equal(t, "sample one", text)
	})

	t.Run("Embedded day 3 part 2 uses its own sample", func(t *testing.T) {
		s, err := New("")
		require.NoError(t, err)

		text, err := s.Input(3, 2)
		require.NoError(t, err)
		assert.Contains(t, text, "don't()")
	})

	t.Run("Embedded input wins over sample", func(t *testing.T) {
		s, err := NewFromFS(fsys, "")
		require.NoError(t, err)

		text, err := s.Input(2, 1)
		require.NoError(t, err)
		assert.Equal(t, "embedded two", text)
	})

	t.Run("Directory override wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "day02.txt"), []byte("disk two"), 0o644))

		s, err := NewFromFS(fsys, dir)
		require.NoError(t, err)

		text, err := s.Input(2, 1)
		require.NoError(t, err)
		assert.Equal(t, "disk two", text)

		text, err = s.Input(1, 1)
		require.NoError(t, err)
		assert.Equal(t, "sample one", text)
	})

	t.Run("Unknown day", func(t *testing.T) {
		s, err := NewFromFS(fsys, "")
		require.NoError(t, err)

		_, err = s.Input(9, 1)
		assert.ErrorIs(t, err, ErrUnknownDay)
	})

	t.Run("Missing manifest", func(t *testing.T) {
		_, err := NewFromFS(fstest.MapFS{}, "")
		assert.Error(t, err)
	})
}
