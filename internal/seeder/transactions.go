package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
	"github.com/sirupsen/logrus"
)

func (s *Seeder) seedTransactions(ctx context.Context, count int) (int, error) {
	users, err := s.adapter.ListUserIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, ErrNoUsers
	}

	products, err := s.adapter.ListProducts(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, ErrNoProducts
	}

	gen := s.config.Generation
	s.announce("📝 Seeding %d transactions for %d users over %d products...", count, len(users), len(products))
	progress := NewProgress(s.out, count, s.now)

	for i := 0; i < count; i++ {
		tr := types.TransactionRow{
			User:     users[s.generator.Intn(len(users))],
			Datetime: s.generator.Backdate(s.now(), gen.BackdateDays),
		}

		var items []types.TransactionItemRow
		if s.generator.Chance(gen.DepositProbability) {
			tr.Amount = s.generator.Deposit(gen.DepositMin, gen.DepositMax)
		} else {
			tr.Amount, items = s.generator.Purchase(products, gen.MaxItems, gen.MaxQuantity)
		}

		err := s.inUnit(ctx, func(tx database.Tx) error {
			id, err := tx.InsertTransaction(ctx, tr)
			if err != nil {
				return err
			}

			for _, item := range items {
				item.TransactionID = id
				if _, err := tx.InsertTransactionItem(ctx, item); err != nil {
					return err
				}
			}

			s.log.WithFields(logrus.Fields{
				"id":     id,
				"user":   tr.User,
				"amount": tr.Amount,
				"items":  len(items),
			}).Debug("transaction inserted")
			return nil
		})
		if err != nil {
			return i, fmt.Errorf("failed to seed transaction %d: %w", i+1, err)
		}

		progress.Step()
	}

	progress.Done()
	return count, nil
}
