package almanac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangefold/internal/rangemap"
)

func TestParseText(t *testing.T) {
	a, err := LoadFile(filepath.Join("testdata", "sample.txt"), FormatAuto)
	require.NoError(t, err)

	assert.Equal(t, "1", a.Version)
	assert.Equal(t, []rangemap.ID{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)

	first := a.Stages[0]
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, "seed-to-soil", first.Name())
	assert.Equal(t, []Triple{{Dest: 50, Src: 98, Len: 2}, {Dest: 52, Src: 50, Len: 48}}, first.Rules)

	last := a.Stages[6]
	assert.Equal(t, "humidity-to-location", last.Name())
	assert.Len(t, last.Rules, 2)
}

func TestParseText_Variants(t *testing.T) {
	t.Run("no blank lines", func(t *testing.T) {
		a, err := ParseText([]byte("seeds: 1 2\na-to-b map:\n1 2 3\nb-to-c map:\n4 5 6\n"))
		require.NoError(t, err)
		require.Len(t, a.Stages, 2)
		assert.Equal(t, []Triple{{Dest: 4, Src: 5, Len: 6}}, a.Stages[1].Rules)
	})

	t.Run("empty section", func(t *testing.T) {
		a, err := ParseText([]byte("seeds: 1 2\n\na-to-b map:\n"))
		require.NoError(t, err)
		require.Len(t, a.Stages, 1)
		assert.Empty(t, a.Stages[0].Rules)
	})

	t.Run("large numbers", func(t *testing.T) {
		a, err := ParseText([]byte("seeds: 3037137218 280060634\n\na-to-b map:\n4260451879 3998094542 34643337\n"))
		require.NoError(t, err)
		assert.Equal(t, rangemap.ID(3037137218), a.Seeds[0])
		assert.Equal(t, Triple{Dest: 4260451879, Src: 3998094542, Len: 34643337}, a.Stages[0].Rules[0])
	})
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing seeds header", "1 2 3\n"},
		{"incomplete rule", "seeds: 1 2\n\na-to-b map:\n1 2\n"},
		{"incomplete rule before header", "seeds: 1 2\n\na-to-b map:\n1 2\nb-to-c map:\n1 2 3\n"},
		{"malformed header", "seeds: 1 2\n\na-b map:\n1 2 3\n"},
		{"unexpected token", "seeds: 1, 2\n"},
		{"negative number", "seeds: 1 2\n\na-to-b map:\n-1 2 3\n"},
		{"number overflow", "seeds: 99999999999999999999 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	fromYAML, err := LoadFile(filepath.Join("testdata", "sample.yaml"), FormatAuto)
	require.NoError(t, err)

	fromText, err := LoadFile(filepath.Join("testdata", "sample.txt"), FormatText)
	require.NoError(t, err)

	assert.Equal(t, fromText, fromYAML)
}

func TestParseYAML_Errors(t *testing.T) {
	t.Run("short rule", func(t *testing.T) {
		_, err := ParseYAML([]byte("seeds: [1, 2]\nstages:\n  - from: a\n    to: b\n    rules:\n      - [1, 2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3 values")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := ParseYAML([]byte("seeds: [1, 2]\nstages:\n  - from: a\n    to: b\n    rules:\n      - {dest: 1, src: 2}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs dest, src and len")
	})

	t.Run("scalar rule", func(t *testing.T) {
		_, err := ParseYAML([]byte("seeds: [1, 2]\nstages:\n  - from: a\n    to: b\n    rules:\n      - 5\n"))
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseYAML([]byte("seeds: [1, x]\n"))
		assert.Error(t, err)
	})
}

func TestWriteFile_RoundTrip(t *testing.T) {
	a, err := LoadFile(filepath.Join("testdata", "sample.txt"), FormatAuto)
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"out.yaml", "out.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(a, path, FormatAuto))

		back, err := LoadFile(path, FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, a, back, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [50, 98, 2]")
	assert.Contains(t, string(data), "seeds: [79, 14, 55, 13]")

	text, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)

	orig, err := os.ReadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(orig), string(text))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), FormatAuto)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("a/b.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("B.YML"))
	assert.Equal(t, FormatText, DetectFormat("input.txt"))
	assert.Equal(t, FormatText, DetectFormat("input"))

	assert.Equal(t, "YAML", FormatYAML.String())
	assert.Equal(t, "Format(7)", Format(7).String())

	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("Auto")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}
