package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Stock Movements Table")
	require.NoError(t, err)

	assert.Contains(t, mf.UpPath, "add_stock_movements_table.up.sql")
	assert.Contains(t, mf.DownPath, "add_stock_movements_table.down.sql")

	for _, path := range []string{mf.UpPath, mf.DownPath} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Add Stock Movements Table")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Add Users Table":      "add_users_table",
		"fix--double__delims":  "fix_double_delims",
		"Trailing Space ":      "trailing_space",
		"MixedCase123":         "mixedcase123",
		"weird!@#chars$%^":     "weirdchars",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, sanitizeName(input), "input: %q", input)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "_first")
}

func TestListMigrationsMissingDir(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/path/for/test")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
