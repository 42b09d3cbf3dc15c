package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

var seedProducts = []domain.ProductRef{
	{ID: "sku-espresso", Name: "Espresso machine", ImageURL: "https://example.com/img/espresso.jpg"},
	{ID: "sku-sneakers", Name: "Running sneakers", ImageURL: "https://example.com/img/sneakers.jpg"},
	{ID: "sku-headphones", Name: "Noise cancelling headphones", ImageURL: "https://example.com/img/headphones.jpg"},
	{ID: "sku-backpack", Name: "Travel backpack", ImageURL: "https://example.com/img/backpack.jpg"},
	{ID: "sku-kettle", Name: "Gooseneck kettle", ImageURL: "https://example.com/img/kettle.jpg"},
}

// Seed creates demo campaigns through the use case and joins a random
// number of participants to each, so seeded data obeys every engine rule.
func Seed(ctx context.Context, svc port.WishUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	types := []domain.CampaignType{domain.TypeStandard, domain.TypeFlash, domain.TypeExclusive}

	for i, product := range seedProducts {
		original := int64(5000 + r.Intn(20)*1000)
		c, err := svc.Create(ctx, domain.CampaignSpec{
			Product:       product,
			Type:          types[i%len(types)],
			TargetCount:   5 + r.Intn(20),
			OriginalPrice: original,
			GroupPrice:    original * int64(60+r.Intn(25)) / 100,
			CreatedBy:     fmt.Sprintf("seed-initiator-%d", i+1),
			InitiatorVariant: domain.Variant{
				Size:  []string{"S", "M", "L"}[r.Intn(3)],
				Color: []string{"black", "white", "red"}[r.Intn(3)],
			},
		})
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", product.ID, err)
		}

		joins := r.Intn(c.TargetCount - 1)
		for j := 0; j < joins; j++ {
			_, err = svc.Join(ctx, c.ID, fmt.Sprintf("seed-user-%d-%d", i+1, j+1), domain.Variant{
				Size: []string{"S", "M", "L"}[r.Intn(3)],
			})
			if err != nil {
				return fmt.Errorf("seed join %s: %w", c.ID, err)
			}
		}
	}
	return nil
}
