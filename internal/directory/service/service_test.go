package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func mustCreateUser(t *testing.T, svc *UsersService, in domain.UserInput) domain.User {
	t.Helper()

	user, errs := svc.Create(context.Background(), in)
	require.Empty(t, errs)
	require.NotNil(t, user)
	return *user
}

func userInput(n int) domain.UserInput {
	return domain.UserInput{
		FirstName: fmt.Sprintf("First%d", n),
		LastName:  fmt.Sprintf("Last%02d", n),
		Initials:  fmt.Sprintf("FL%d", n),
		Email:     fmt.Sprintf("user%d@example.com", n),
		Status:    domain.UserStatusActive,
	}
}

func addressInput(userID int64, typ domain.AddressType, validFrom time.Time) domain.AddressInput {
	return domain.AddressInput{
		UserID:         userID,
		AddressType:    typ,
		ValidFrom:      validFrom,
		PostCode:       "12-34",
		City:           "Springfield",
		CountryCode:    "USA",
		Street:         "Evergreen Terrace",
		BuildingNumber: "742",
	}
}
