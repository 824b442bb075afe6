package dataset_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"weblate-bridge/internal/dataset"
)

const sample = `weblate:
  STR_ZULU: last alphabetically, first in file
  STR_ALPHA: "value: with colon"
  STR_MID: "韓國語 {NUM}"
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		table, err := dataset.Parse([]byte(sample), "weblate")
		require.NoError(t, err)
		require.Equal(t, 3, table.Len())

		var keys []string
		table.Each(func(key, _ string) { keys = append(keys, key) })
		require.Equal(t, []string{"STR_ZULU", "STR_ALPHA", "STR_MID"}, keys)
	})

	t.Run("values survive verbatim", func(t *testing.T) {
		t.Parallel()

		table, err := dataset.Parse([]byte(sample), "weblate")
		require.NoError(t, err)

		v, ok := table.Get("STR_ALPHA")
		require.True(t, ok)
		require.Equal(t, "value: with colon", v)

		v, ok = table.Get("STR_MID")
		require.True(t, ok)
		require.Equal(t, "韓國語 {NUM}", v)
	})

	t.Run("missing group key is fatal", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Parse([]byte("other:\n  STR_A: a\n"), "weblate")
		require.Error(t, err)
		require.Contains(t, err.Error(), `missing top-level "weblate"`)
	})

	t.Run("group entry must be a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Parse([]byte("weblate: just a string\n"), "weblate")
		require.Error(t, err)
	})

	t.Run("nested mapping value is fatal", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Parse([]byte("weblate:\n  STR_A:\n    nested: x\n"), "weblate")
		require.Error(t, err)
		require.Contains(t, err.Error(), `"STR_A"`)
	})

	t.Run("sequence value is fatal", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Parse([]byte("weblate:\n  STR_A:\n    - x\n    - y\n"), "weblate")
		require.Error(t, err)
	})

	t.Run("empty document is fatal", func(t *testing.T) {
		t.Parallel()

		_, err := dataset.Parse(nil, "weblate")
		require.Error(t, err)
	})

	t.Run("custom group key", func(t *testing.T) {
		t.Parallel()

		table, err := dataset.Parse([]byte("custom:\n  STR_A: a\n"), "custom")
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	table := dataset.NewTable()
	table.Set("STR_ZULU", "first")
	table.Set("STR_ALPHA", "値…テスト")
	table.Set("STR_COLON", "a: b")

	data, err := dataset.Marshal(table, "weblate")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "weblate:\n"))

	back, err := dataset.Parse(data, "weblate")
	require.NoError(t, err)
	require.Equal(t, table.Len(), back.Len())

	var keys []string
	back.Each(func(key, _ string) { keys = append(keys, key) })
	require.Equal(t, []string{"STR_ZULU", "STR_ALPHA", "STR_COLON"}, keys)

	v, _ := back.Get("STR_ALPHA")
	require.Equal(t, "値…テスト", v)
	v, _ = back.Get("STR_COLON")
	require.Equal(t, "a: b", v)
}

func TestLoadDump(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	table := dataset.NewTable()
	table.Set("STR_A", "alpha")

	require.NoError(t, dataset.Dump(path, table, "weblate"))

	back, err := dataset.Load(path, "weblate")
	require.NoError(t, err)

	v, ok := back.Get("STR_A")
	require.True(t, ok)
	require.Equal(t, "alpha", v)

	_, err = dataset.Load(filepath.Join(dir, "missing.yaml"), "weblate")
	require.Error(t, err)
}
