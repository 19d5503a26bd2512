package price_item

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/pkg/clock"
	"github.com/harborline/tariff-service/internal/pkg/metrics"
)

// Request contains the data needed to price one booking line.
type Request struct {
	Provider  string
	BasePrice decimal.Decimal
	Context   domain.LineContext
}

// Interactor handles the price item use case.
type Interactor struct {
	rules    contracts.RuleRepository
	partners contracts.PartnerRepository
	clock    clock.Clock
}

// NewInteractor creates a new price item interactor.
func NewInteractor(
	rules contracts.RuleRepository,
	partners contracts.PartnerRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		rules:    rules,
		partners: partners,
		clock:    clock,
	}
}

// Execute resolves the eligible adjustment rules for the line context
// and applies them in stored order against the base price.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.AdjustmentResult, error) {
	if req.Provider == "" {
		return nil, domain.ErrEmptyProvider
	}
	now := i.clock.Now()

	candidates, err := i.rules.ListAdjustmentRules(ctx, req.Provider, req.Context.ServiceType, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment rules: %w", err)
	}

	partners, err := i.partners.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	tree := domain.NewPartnerTree(partners)

	resolver := domain.NewScopedResolver(tree)
	eligible := resolver.ResolveAdjustmentRules(candidates, req.Context, now)

	result, err := domain.CalculateAdjustments(eligible, req.BasePrice)
	if err != nil {
		return nil, err
	}

	outcome := "none"
	if len(result.Applied) > 0 {
		outcome = "applied"
	}
	metrics.RuleEvaluations.WithLabelValues("adjustment", outcome).Inc()

	return result, nil
}
