package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkhaven/userdir/internal/directory/domain"
	"github.com/parkhaven/userdir/internal/directory/store"
)

// seedBatchSize bounds how many inserts share one transaction during Seed.
const seedBatchSize = 100

// Seed populates the users table with total deterministic entries
// (First1/Last1/FL1/user1@example.com, ...), all ACTIVE. Inserts run in
// batched transactions; rows whose email is already taken are skipped so
// Seed can be re-run safely.
func (app *Application) Seed(ctx context.Context, total int) error {
	for i := 0; i < total; i += seedBatchSize {
		end := min(i+seedBatchSize, total)

		err := app.db.WithTx(ctx, func(tx store.Tx) error {
			for j := i; j < end; j++ {
				n := j + 1
				in := domain.UserInput{
					FirstName: fmt.Sprintf("First%d", n),
					LastName:  fmt.Sprintf("Last%d", n),
					Initials:  fmt.Sprintf("FL%d", n),
					Email:     fmt.Sprintf("user%d@example.com", n),
					Status:    domain.UserStatusActive,
				}
				if _, err := tx.Users().CreateUser(ctx, in); err != nil {
					if errors.Is(err, store.ErrAlreadyExists) {
						continue // already seeded; skip like the original batch load
					}
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to seed users %d to %d: %w", i+1, end, err)
		}

		app.logger.Info("seeded users", "from", i+1, "to", end)
	}
	return nil
}
