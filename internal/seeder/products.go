package seeder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/catalog"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/imagery"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
	"github.com/sirupsen/logrus"
)

func (s *Seeder) seedProducts(ctx context.Context, count int) (int, error) {
	metadata, err := catalog.LoadProducts(s.config.Assets.ProductsFile)
	if err != nil {
		return 0, fmt.Errorf("failed to load product metadata: %w", err)
	}

	Shuffle(s.generator, metadata)
	if count > len(metadata) {
		s.log.WithFields(logrus.Fields{"requested": count, "available": len(metadata)}).
			Warn("not enough product metadata, seeding fewer products")
		count = len(metadata)
	}

	if err := s.config.EnsureDirectories(); err != nil {
		return 0, err
	}

	scratch := s.config.Images.ScratchFile
	defer os.Remove(scratch)

	flags := types.DefaultProductFlags.String()
	s.announce("📝 Seeding %d products...", count)
	progress := NewProgress(s.out, count, s.now)

	for i, meta := range metadata[:count] {
		row := types.ProductRow{
			Name:        meta.Name,
			Price:       meta.Price,
			Description: meta.Description,
			Stock:       s.generator.Between(0, s.config.Generation.MaxStock),
			Flags:       flags,
		}

		var written string
		err := s.inUnit(ctx, func(tx database.Tx) error {
			id, err := tx.InsertProduct(ctx, row)
			if err != nil {
				return err
			}

			path, err := s.storeImage(ctx, id)
			if err != nil {
				return err
			}
			written = path

			s.log.WithFields(logrus.Fields{
				"id":    id,
				"name":  row.Name,
				"stock": row.Stock,
				"image": path,
			}).Debug("product inserted")
			return nil
		})
		if err != nil {
			if written != "" {
				os.Remove(written)
			}
			return i, fmt.Errorf("failed to seed product %q: %w", row.Name, err)
		}

		progress.Step()
	}

	progress.Done()
	return count, nil
}

// storeImage fetches a random photo, stages it in the scratch file and writes
// the square thumbnail named after the product id.
func (s *Seeder) storeImage(ctx context.Context, id int64) (string, error) {
	data, err := s.images.Random(ctx)
	if err != nil {
		return "", err
	}

	scratch := s.config.Images.ScratchFile
	if err := os.WriteFile(scratch, data, 0644); err != nil {
		return "", fmt.Errorf("failed to stage image: %w", err)
	}

	img, err := imagery.Open(scratch)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.config.Images.Dir, fmt.Sprintf("%d.%s", id, s.config.ImageExt()))
	thumb := imagery.Thumbnail(img, s.config.Images.Size)
	if err := imagery.Save(path, thumb, s.config.Images.Format); err != nil {
		return "", err
	}

	return path, nil
}
