package migrations

import (
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(files, "sql/*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	require.Equal(t, len(ups), len(downs))

	source, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), first)
}
