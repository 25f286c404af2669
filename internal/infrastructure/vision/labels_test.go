package vision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeClassFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClasses(t *testing.T) {
	path := writeClassFile(t, "person\nbicycle\ncat\n")

	classes, err := LoadClasses(path)
	require.NoError(t, err)
	require.Equal(t, []string{"person", "bicycle", "cat"}, classes)
}

func TestLoadClassesSkipsBlankLines(t *testing.T) {
	path := writeClassFile(t, "person\n\n  \ncat\n\n")

	classes, err := LoadClasses(path)
	require.NoError(t, err)
	require.Equal(t, []string{"person", "cat"}, classes)
}

func TestLoadClassesEmptyFile(t *testing.T) {
	path := writeClassFile(t, "\n\n")

	_, err := LoadClasses(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestLoadClassesMissingFile(t *testing.T) {
	_, err := LoadClasses(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
