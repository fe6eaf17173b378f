package storage

import (
	"context"
	"log"
	"time"

	"github.com/maryamazeem12/websitelive/internal/models"
)

// SampleProducts returns the starter catalog inserted the first time a
// backend comes up empty.
func SampleProducts(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:          "royal_timepieces_1",
			Name:        "Diamond Elite Necklace",
			Category:    "royal_timepieces",
			Type:        "jewelry",
			Price:       125999,
			Currency:    "AED",
			Description: "18k white gold, premium diamonds, luxury design",
			Image:       "images/diamond-necklace.jpg",
			Badge:       "Premium",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          "royal_timepieces_2",
			Name:        "Platinum Heritage",
			Category:    "royal_timepieces",
			Type:        "watch",
			Price:       195999,
			Currency:    "AED",
			Description: "Platinum case, sapphire crystal, limited to 100 pieces",
			Image:       "images/platinum-watch.jpg",
			Badge:       "Limited Edition",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          "best_sellers_1",
			Name:        "Classic Steel Master",
			Category:    "best_sellers",
			Type:        "watch",
			Price:       35999,
			Currency:    "AED",
			Description: "Stainless steel case, automatic movement, water resistant",
			Image:       "images/classic-steel-watch.jpg",
			Badge:       "Best Seller",
			InStock:     true,
			CreatedAt:   now,
		},
	}
}

// Seed inserts the sample catalog iff the backend holds no products yet.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	samples := SampleProducts(time.Now().UTC())
	for _, p := range samples {
		if _, err := s.InsertProduct(ctx, p); err != nil {
			return err
		}
	}
	log.Printf("storage: seeded %d sample products", len(samples))
	return nil
}
