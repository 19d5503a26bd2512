package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"

	promorepo "github.com/harborline/tariff-service/internal/app/promotion/repo"
	"github.com/harborline/tariff-service/internal/app/promotion/usecases/apply_best_promotion"
	"github.com/harborline/tariff-service/internal/app/rating/queries/list_rules"
	"github.com/harborline/tariff-service/internal/app/rating/repo"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/distribute_commission"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/price_item"
	"github.com/harborline/tariff-service/internal/pkg/clock"
	transport "github.com/harborline/tariff-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	HTTPHandler   http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewSystemClock()

	// 3. Create repositories
	ruleRepo := repo.NewRuleRepo(spannerClient)
	partnerRepo := repo.NewPartnerRepo(spannerClient)
	promotionRepo := promorepo.NewPromotionRepo(spannerClient)
	ruleReadModel := repo.NewRuleReadModel(spannerClient)

	// 4. Create use cases
	priceItemUseCase := price_item.NewInteractor(ruleRepo, partnerRepo, clk)
	distributeUseCase := distribute_commission.NewInteractor(ruleRepo, partnerRepo, clk)
	applyPromotionUseCase := apply_best_promotion.NewInteractor(promotionRepo, clk)

	// 5. Create query use cases
	listRulesQuery := list_rules.NewQuery(ruleReadModel)

	// 6. Create HTTP handler and router
	handler := transport.NewHandler(
		priceItemUseCase,
		distributeUseCase,
		applyPromotionUseCase,
		listRulesQuery,
	)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		HTTPHandler:   transport.NewRouter(handler),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
