package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blackteam/notas/internal/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "blackteam.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	return database
}
