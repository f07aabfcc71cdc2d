package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/catalog"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
	"github.com/sirupsen/logrus"
)

const userRole = "user"

// EmailFor derives the address of a generated user.
func EmailFor(name, suffix string) string {
	return strings.ToLower(name) + suffix
}

func (s *Seeder) seedUsers(ctx context.Context, count int) (int, error) {
	names, err := catalog.LoadNames(s.config.Assets.NamesFile)
	if err != nil {
		return 0, fmt.Errorf("failed to load names: %w", err)
	}

	Shuffle(s.generator, names)
	if count > len(names) {
		s.log.WithFields(logrus.Fields{"requested": count, "available": len(names)}).
			Debug("name pool exhausted, seeding fewer users")
		count = len(names)
	}

	s.announce("📝 Seeding %d users...", count)
	progress := NewProgress(s.out, count, s.now)

	for i, name := range names[:count] {
		row := types.UserRow{
			Name:                name,
			Email:               EmailFor(name, s.config.Generation.EmailSuffix),
			GoogleID:            s.tokens.Next(),
			Role:                userRole,
			Balance:             0,
			OnLeaderboard:       s.generator.Bool(),
			PrivateTransactions: s.generator.Bool(),
		}

		err := s.inUnit(ctx, func(tx database.Tx) error {
			id, err := tx.InsertUser(ctx, row)
			if err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{"id": id, "name": row.Name, "email": row.Email}).Debug("user inserted")
			return nil
		})
		if err != nil {
			return i, fmt.Errorf("failed to seed user %q: %w", name, err)
		}

		progress.Step()
	}

	progress.Done()
	return count, nil
}
