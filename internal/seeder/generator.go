package seeder

import (
	"math/rand"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
)

type DataGenerator struct {
	rand *rand.Rand
}

func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (g *DataGenerator) Intn(n int) int {
	return g.rand.Intn(n)
}

// Between returns a random int in [lo, hi].
func (g *DataGenerator) Between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *DataGenerator) Bool() bool {
	return g.rand.Intn(2) == 1
}

// Chance reports true with probability p.
func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

// Backdate moves now back by a random offset of at most days days, at
// second resolution.
func (g *DataGenerator) Backdate(now time.Time, days int) time.Time {
	window := int64(days) * 24 * 60 * 60
	return now.Add(-time.Duration(g.rand.Int63n(window+1)) * time.Second)
}

// Deposit returns a whole amount in [lo, hi].
func (g *DataGenerator) Deposit(lo, hi int) float64 {
	return float64(g.Between(lo, hi))
}

// Purchase samples between 1 and maxItems distinct products, each with a
// quantity in [1, maxQuantity]. The amount is the negated total. The items
// have no TransactionID yet.
func (g *DataGenerator) Purchase(products []types.ProductRow, maxItems, maxQuantity int) (float64, []types.TransactionItemRow) {
	n := g.Between(1, min(maxItems, len(products)))

	items := make([]types.TransactionItemRow, 0, n)
	total := 0.0
	for _, idx := range g.rand.Perm(len(products))[:n] {
		p := products[idx]
		quantity := g.Between(1, maxQuantity)
		total += p.Price * float64(quantity)
		items = append(items, types.TransactionItemRow{
			Product:  p.ID,
			Quantity: quantity,
			Name:     p.Name,
			Price:    p.Price,
		})
	}

	return -total, items
}

func Shuffle[T any](g *DataGenerator, s []T) {
	g.rand.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
