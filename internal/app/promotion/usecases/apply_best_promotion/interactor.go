package apply_best_promotion

import (
	"context"
	"fmt"
	"sync"

	"github.com/harborline/tariff-service/internal/app/promotion/contracts"
	"github.com/harborline/tariff-service/internal/app/promotion/domain"
	"github.com/harborline/tariff-service/internal/pkg/clock"
	"github.com/harborline/tariff-service/internal/pkg/metrics"
)

// evalWorkers bounds the concurrent promotion evaluations per request.
const evalWorkers = 4

// Request contains the data needed to pick the best promotion for a cart.
type Request struct {
	Cart   domain.Cart
	TripID string
}

// Interactor handles the apply best promotion use case.
type Interactor struct {
	promotions contracts.PromotionRepository
	clock      clock.Clock
}

// NewInteractor creates a new apply best promotion interactor.
func NewInteractor(promotions contracts.PromotionRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		promotions: promotions,
		clock:      clock,
	}
}

// Execute evaluates every eligible promotion against the cart and
// selects the single best one. Candidates are evaluated concurrently;
// results are collected by candidate index so the selection order
// stays the stable id order regardless of worker scheduling.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Selection, error) {
	promotions, err := i.promotions.ListActivePromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	checkout := domain.CheckoutContext{At: i.clock.Now(), TripID: req.TripID}
	candidates := domain.FilterCandidates(promotions, checkout)

	evaluations := make([]*domain.Evaluation, len(candidates))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := evalWorkers
	if len(candidates) < workers {
		workers = len(candidates)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				evaluations[idx] = domain.Evaluate(candidates[idx], req.Cart)
			}
		}()
	}
	for idx := range candidates {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	selection := domain.Select(evaluations, len(candidates))

	outcome := "none"
	if selection.Applied {
		outcome = "applied"
	}
	metrics.PromotionSelections.WithLabelValues(outcome).Inc()

	return selection, nil
}
