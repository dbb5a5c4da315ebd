package sqlite_test

import (
	"context"
	"testing"

	"github.com/nmcintosh/w2n"
	"github.com/nmcintosh/w2n/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testRun() *w2n.Run {
	return &w2n.Run{
		Title:       "Performance Overview",
		DatabaseID:  "282a89fedba5815e91f0db972912ef9f",
		FixturePath: "pages-to-update/performance-overview.html",
		FixtureHash: sqlite.HashFixture("<table></table>"),
		SourceURL:   "https://example.servicenow.com/performance-overview.html",
		PageID:      "abc123",
		PageURL:     "https://notion.so/abc123",
		Success:     true,
		HasErrors:   false,
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))
		run := testRun()

		require.NoError(t, svc.CreateRun(context.Background(), run))

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())
	})

	t.Run("rejects invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))
		run := &w2n.Run{Title: "no database id"}

		err := svc.CreateRun(context.Background(), run)
		assert.Equal(t, w2n.EINVALID, w2n.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))
		run := testRun()
		require.NoError(t, svc.CreateRun(ctx, run))

		got, err := svc.FindRunByID(ctx, run.ID)

		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, run.Title, got.Title)
		assert.Equal(t, run.DatabaseID, got.DatabaseID)
		assert.Equal(t, run.FixturePath, got.FixturePath)
		assert.Equal(t, run.FixtureHash, got.FixtureHash)
		assert.Equal(t, run.SourceURL, got.SourceURL)
		assert.Equal(t, run.PageID, got.PageID)
		assert.Equal(t, run.PageURL, got.PageURL)
		assert.True(t, got.Success)
		assert.False(t, got.HasErrors)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))

		_, err := svc.FindRunByID(context.Background(), "missing")
		assert.Equal(t, w2n.ENOTFOUND, w2n.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("filters by database ID", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))

		a := testRun()
		require.NoError(t, svc.CreateRun(ctx, a))
		b := testRun()
		b.DatabaseID = "other-db"
		require.NoError(t, svc.CreateRun(ctx, b))

		dbID := "other-db"
		runs, err := svc.FindRuns(ctx, w2n.RunFilter{DatabaseID: &dbID})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, b.ID, runs[0].ID)
	})

	t.Run("filters by success", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))

		ok := testRun()
		require.NoError(t, svc.CreateRun(ctx, ok))
		failed := testRun()
		failed.Success = false
		failed.HasErrors = true
		require.NoError(t, svc.CreateRun(ctx, failed))

		wantSuccess := false
		runs, err := svc.FindRuns(ctx, w2n.RunFilter{Success: &wantSuccess})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, failed.ID, runs[0].ID)
		assert.True(t, runs[0].HasErrors)
	})

	t.Run("filters by failed outcome", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))

		clean := testRun()
		require.NoError(t, svc.CreateRun(ctx, clean))
		notCreated := testRun()
		notCreated.Success = false
		notCreated.HasErrors = true
		require.NoError(t, svc.CreateRun(ctx, notCreated))
		// Page created but validation reported errors.
		invalid := testRun()
		invalid.Success = true
		invalid.HasErrors = true
		require.NoError(t, svc.CreateRun(ctx, invalid))

		failed := true
		runs, err := svc.FindRuns(ctx, w2n.RunFilter{Failed: &failed})

		require.NoError(t, err)
		require.Len(t, runs, 2)
		ids := []string{runs[0].ID, runs[1].ID}
		assert.Contains(t, ids, notCreated.ID)
		assert.Contains(t, ids, invalid.ID)

		notFailed := false
		runs, err = svc.FindRuns(ctx, w2n.RunFilter{Failed: &notFailed})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, clean.ID, runs[0].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))

		for range 3 {
			require.NoError(t, svc.CreateRun(ctx, testRun()))
		}

		runs, err := svc.FindRuns(ctx, w2n.RunFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("supports offset without limit", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))

		for range 3 {
			require.NoError(t, svc.CreateRun(ctx, testRun()))
		}

		runs, err := svc.FindRuns(ctx, w2n.RunFilter{Offset: 2})

		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))

		runs, err := svc.FindRuns(context.Background(), w2n.RunFilter{})

		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing run", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewRunService(openTestDB(t))
		run := testRun()
		require.NoError(t, svc.CreateRun(ctx, run))

		require.NoError(t, svc.DeleteRun(ctx, run.ID))

		_, err := svc.FindRunByID(ctx, run.ID)
		assert.Equal(t, w2n.ENOTFOUND, w2n.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(openTestDB(t))

		err := svc.DeleteRun(context.Background(), "missing")
		assert.Equal(t, w2n.ENOTFOUND, w2n.ErrorCode(err))
	})
}

func TestHashFixture(t *testing.T) {
	t.Parallel()

	a := sqlite.HashFixture("<p>one</p>")
	b := sqlite.HashFixture("<p>two</p>")

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 16)
	assert.Equal(t, a, sqlite.HashFixture("<p>one</p>"))
}
