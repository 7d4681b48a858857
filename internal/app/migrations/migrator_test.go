package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMigrationFiles_SortedSQLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_reports.sql", "001_init.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	paths, err := listMigrationFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "001_init.sql"),
		filepath.Join(dir, "002_reports.sql"),
	}, paths)
}

func TestListMigrationFiles_MissingDirectory(t *testing.T) {
	_, err := listMigrationFiles(filepath.Join(t.TempDir(), "absent"))

	assert.Error(t, err)
}

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"migrations/001_init.sql", "001"},
		{"002_reports.sql", "002"},
		{"010_access_grants.sql", "010"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migrationVersion(tt.path))
	}
}
