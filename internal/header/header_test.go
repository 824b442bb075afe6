package header_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"weblate-bridge/internal/header"
)

func TestKoKoreLines(t *testing.T) {
	t.Parallel()

	lines := header.KoKore.Lines()
	require.Len(t, lines, header.LineCount)

	require.Equal(t, []string{
		"##name Korean (Mixed Script)",
		"##ownname 韓國語",
		"##isocode ko_Kore",
		"##plural 11",
		"##textdir ltr",
		"##digitsep ,",
		"##digitsepcur ,",
		"##decimalsep .",
		"##winlangid 0x0c12",
		"##grflangid 0x3b",
		"##gender m f",
		"##case case1",
	}, lines)

	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "##"))
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("reads profile from yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`name: Japanese
ownname: 日本語
isocode: ja_JP
plural: 1
textdir: ltr
digitsep: ","
digitsepcur: ","
decimalsep: "."
winlangid: "0x0411"
grflangid: "0x39"
gender: [m, f]
case: [case1, case2]
`), 0644))

		profile, err := header.LoadProfile(path)
		require.NoError(t, err)
		require.Equal(t, "Japanese", profile.Name)
		require.Equal(t, "ja_JP", profile.ISOCode)

		lines := profile.Lines()
		require.Len(t, lines, header.LineCount)
		require.Equal(t, "##name Japanese", lines[0])
		require.Equal(t, "##plural 1", lines[3])
		require.Equal(t, "##gender m f", lines[10])
		require.Equal(t, "##case case1 case2", lines[11])
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := header.LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
