package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("writes an up and down pair with a header", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add order indexes")

		require.NoError(t, err)
		assert.Len(t, mf.Version, 14)
		assert.True(t, strings.HasSuffix(mf.UpPath, "_add_order_indexes.up.sql"))
		assert.True(t, strings.HasSuffix(mf.DownPath, "_add_order_indexes.down.sql"))

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Equal(t, "-- add order indexes\n\n", string(up))

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Equal(t, "-- add order indexes\n\n", string(down))
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(dir, "init")

		require.NoError(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"add order indexes", "add_order_indexes"},
		{"Add-Order-Indexes", "add_order_indexes"},
		{"weird!!chars##here", "weirdcharshere"},
		{"  spaced  out  ", "spaced_out"},
		{"trailing-", "trailing"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeName(tc.in), "input %q", tc.in)
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists base names of up migrations only", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"000001_init.up.sql",
			"000001_init.down.sql",
			"000002_add_stores.up.sql",
			"000002_add_stores.down.sql",
			"README.md",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644))
		}

		migrations, err := ListMigrations(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{"000001_init", "000002_add_stores"}, migrations)
	})

	t.Run("a missing directory lists nothing", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))

		assert.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
