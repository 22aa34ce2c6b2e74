package app

import (
	"context"
	"testing"

	"github.com/parkhaven/userdir/pkg/pagex"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()

	application, err := New(Config{
		DatabaseFile: ":memory:",
		Env:          "dev",
		LogLevel:     "error",
		LogFormat:    "text",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	return application
}

func TestSeedPopulatesUsers(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, application.Seed(ctx, 150))

	page, err := application.Users.List(ctx, pagex.Params{PageSize: 1})
	require.NoError(t, err)
	require.Equal(t, 150, page.TotalItems)
	require.Equal(t, 150, page.TotalPages)
}

func TestSeedIsRerunSafe(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, application.Seed(ctx, 30))
	require.NoError(t, application.Seed(ctx, 50)) // first 30 already exist

	page, err := application.Users.List(ctx, pagex.Params{})
	require.NoError(t, err)
	require.Equal(t, 50, page.TotalItems)
}

func TestSeededUsersAreActiveWithDeterministicFields(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, application.Seed(ctx, 3))

	user, err := application.Users.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "First1", user.FirstName)
	require.Equal(t, "Last1", user.LastName)
	require.Equal(t, "FL1", user.Initials)
	require.Equal(t, "user1@example.com", user.Email)
	require.Equal(t, "Active", user.Status.Label())
}
