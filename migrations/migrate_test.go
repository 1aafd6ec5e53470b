package migrations

import (
	"io/fs"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_AllFilesPresent(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_items.sql",
		"00003_create_orders.sql",
	}, files)
}

func TestEmbeddedMigrations_EveryFileHasUpAndDown(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	for _, name := range files {
		data, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		assert.Contains(t, string(data), "-- +goose Up", "%s is missing the up section", name)
		assert.Contains(t, string(data), "-- +goose Down", "%s is missing the down section", name)
	}
}
