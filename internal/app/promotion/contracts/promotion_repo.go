package contracts

import (
	"context"

	"github.com/harborline/tariff-service/internal/app/promotion/domain"
)

// PromotionRepository fetches the structurally active promotion
// snapshot. Basis matching (period window, trip id) stays in the
// domain: trip promotions are time-unconditional, so the store cannot
// pre-filter on dates alone.
type PromotionRepository interface {
	ListActivePromotions(ctx context.Context) ([]*domain.Promotion, error)
}
