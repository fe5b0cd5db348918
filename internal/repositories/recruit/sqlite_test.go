package recruit_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamshade/recruit-api/internal/errors"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
	"github.com/dreamshade/recruit-api/internal/testutils"
)

func TestNewSQLiteValidation(t *testing.T) {
	_, err := recruitrepo.NewSQLite(nil)
	require.Error(t, err)

	_, err = recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{Path: "  "})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSQLiteFilePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "roster.db")

	repo, err := recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{Path: path})
	require.NoError(t, err)

	rec := testutils.CreateTestRecruit(testutils.TestPlayerID)
	_, err = repo.Create(ctx, recruitrepo.CreateInput{Recruit: rec})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, recruitrepo.GetInput{ID: rec.ID})
	require.NoError(t, err)
	assert.Equal(t, rec.Ranks, got.Recruit.Ranks)
	assert.Equal(t, rec.Name, got.Recruit.Name)
}
