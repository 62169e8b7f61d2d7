package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/alexanderramin/scholarform/internal/repository"
	"github.com/alexanderramin/scholarform/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepo_CreateAndGetByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)
	ctx := context.Background()

	app := testutil.NewTestApplication(testutil.WithSubjects(
		domain.NewSubjectEntry("Math", "100", "85"),
		domain.NewSubjectEntry("Art", "50", "40"),
	))
	require.NoError(t, repo.Create(ctx, app))

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.FullName, got.FullName)
	assert.Equal(t, app.FundAmount, got.FundAmount)
	assert.True(t, app.SubmittedAt.Equal(got.SubmittedAt))
	require.Len(t, got.Subjects, 2)
	assert.Equal(t, "Math", got.Subjects[0].Name())
	assert.Equal(t, "Art", got.Subjects[1].Name())
	assert.Equal(t, "80.0%", got.Subjects[1].Percentage().String())
}

func TestApplicationRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplicationRepo_GetByPrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)
	ctx := context.Background()

	a := testutil.NewTestApplication()
	a.ID = "aaaa1111-0000-0000-0000-000000000001"
	b := testutil.NewTestApplication()
	b.ID = "aaaa2222-0000-0000-0000-000000000002"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByPrefix(ctx, "aaaa1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = repo.GetByPrefix(ctx, "aaaa")
	assert.ErrorIs(t, err, repository.ErrAmbiguousPrefix)

	_, err = repo.GetByPrefix(ctx, "ffff")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByPrefix(ctx, "  ")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplicationRepo_ListNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	older := testutil.NewTestApplication(testutil.WithFullName("Older"), testutil.WithSubmittedAt(base))
	newer := testutil.NewTestApplication(testutil.WithFullName("Newer"), testutil.WithSubmittedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	apps, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Newer", apps[0].FullName)
	assert.Equal(t, "Older", apps[1].FullName)
	assert.Len(t, apps[0].Subjects, 1, "subjects are loaded for listed rows")

	apps, err = repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Newer", apps[0].FullName)
}

func TestApplicationRepo_DeleteCascadesSubjects(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)
	ctx := context.Background()

	app := testutil.NewTestApplication()
	require.NoError(t, repo.Create(ctx, app))
	require.NoError(t, repo.Delete(ctx, app.ID))

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM application_subjects`).Scan(&n))
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, repo.Delete(ctx, app.ID), repository.ErrNotFound)
}

func TestApplicationRepo_CreateRejectsSixthSubject(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteApplicationRepo(database)

	subjects := make([]domain.SubjectEntry, 6)
	for i := range subjects {
		subjects[i] = domain.NewSubjectEntry("Math", "100", "50")
	}
	err := repo.Create(context.Background(), testutil.NewTestApplication(testutil.WithSubjects(subjects...)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting subject 6")
}
