package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/astrolab/internal/models"
)

func TestInitDBCreatesSchema(t *testing.T) {
	db, err := InitDB(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, kind := range models.Kinds() {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+kind.Table()).Scan(&n))
		assert.Zero(t, n, kind.Table())
	}
}

func TestOpenReturnsRepositoryForDriver(t *testing.T) {
	repo, err := Open(context.Background(), "SQLite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	assert.Equal(t, SQLite, repo.Dialect())

	id, err := repo.CreateLaboratory(context.Background(), "AAA-L")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestOpenRejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr string
	}{
		{"unknown driver", "oracle", "", "unsupported database driver"},
		{"postgres without dsn", "postgres", "", "a DSN is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(context.Background(), tt.driver, tt.dsn)
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
