package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promodomain "github.com/harborline/tariff-service/internal/app/promotion/domain"
	"github.com/harborline/tariff-service/internal/app/promotion/usecases/apply_best_promotion"
	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/app/rating/queries/list_rules"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/distribute_commission"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/price_item"
)

type stubPriceItem struct {
	result *domain.AdjustmentResult
	err    error
	got    *price_item.Request
}

func (s *stubPriceItem) Execute(_ context.Context, req *price_item.Request) (*domain.AdjustmentResult, error) {
	s.got = req
	return s.result, s.err
}

type stubDistribute struct {
	result *domain.CommissionResult
	err    error
}

func (s *stubDistribute) Execute(context.Context, *distribute_commission.Request) (*domain.CommissionResult, error) {
	return s.result, s.err
}

type stubApplyPromotion struct {
	selection *promodomain.Selection
	err       error
	got       *apply_best_promotion.Request
}

func (s *stubApplyPromotion) Execute(_ context.Context, req *apply_best_promotion.Request) (*promodomain.Selection, error) {
	s.got = req
	return s.selection, s.err
}

type stubListRules struct {
	result *contracts.RuleListResult
	err    error
	got    *list_rules.Request
}

func (s *stubListRules) Execute(_ context.Context, req *list_rules.Request) (*contracts.RuleListResult, error) {
	s.got = req
	return s.result, s.err
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestRouter(price *stubPriceItem, dist *stubDistribute, promo *stubApplyPromotion, rules *stubListRules) http.Handler {
	if price == nil {
		price = &stubPriceItem{}
	}
	if dist == nil {
		dist = &stubDistribute{}
	}
	if promo == nil {
		promo = &stubApplyPromotion{}
	}
	if rules == nil {
		rules = &stubListRules{}
	}
	return NewRouter(NewHandler(price, dist, promo, rules))
}

func TestQuote(t *testing.T) {
	t.Run("returns priced line", func(t *testing.T) {
		price := &stubPriceItem{result: &domain.AdjustmentResult{
			BasePrice:       dec("100"),
			FinalPrice:      dec("110"),
			TotalAdjustment: dec("10"),
			TotalCommission: dec("5.5"),
			Applied: []domain.AppliedAdjustment{
				{RuleID: "rule-1", RuleName: "High season", Kind: domain.KindMarkup, Adjustment: dec("10"), Commission: dec("5.5")},
			},
		}}
		router := newTestRouter(price, nil, nil, nil)

		body := `{"provider":"provider-1","basePrice":"100","context":{"serviceType":"PASSENGER","layer":"SELLING_AGENT","partner":"agent-7"}}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"basePrice":"100.00",
			"finalPrice":"110.00",
			"totalAdjustment":"10.00",
			"totalCommission":"5.50",
			"appliedRules":[{"ruleId":"rule-1","ruleName":"High season","kind":"MARKUP","adjustment":"10.00","commission":"5.50"}]
		}`, rec.Body.String())

		require.NotNil(t, price.got)
		assert.Equal(t, "provider-1", price.got.Provider)
		assert.Equal(t, domain.ServicePassenger, price.got.Context.ServiceType)
		assert.Equal(t, "agent-7", price.got.Context.Partner)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps negative base price to 400", func(t *testing.T) {
		price := &stubPriceItem{err: domain.ErrNegativeBasePrice}
		router := newTestRouter(price, nil, nil, nil)

		body := `{"provider":"provider-1","basePrice":"-1","context":{"serviceType":"PASSENGER","layer":"SELLING_AGENT"}}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("masks unexpected errors", func(t *testing.T) {
		price := &stubPriceItem{err: errors.New("spanner session pool exhausted")}
		router := newTestRouter(price, nil, nil, nil)

		body := `{"provider":"provider-1","basePrice":"100","context":{"serviceType":"PASSENGER","layer":"SELLING_AGENT"}}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", strings.NewReader(body)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "spanner")
	})
}

func TestDistribute(t *testing.T) {
	dist := &stubDistribute{result: &domain.CommissionResult{
		BasePrice:       dec("200"),
		TotalCommission: dec("20"),
		Distribution: map[domain.Layer]decimal.Decimal{
			domain.LayerMarineAgent:  dec("10"),
			domain.LayerSellingAgent: dec("10"),
		},
		Applied: []domain.AppliedCommission{
			{RuleID: "com-1", RuleName: "Standard commission", Commission: dec("20")},
		},
	}}
	router := newTestRouter(nil, dist, nil, nil)

	body := `{"provider":"provider-1","basePrice":"200","context":{"serviceType":"PASSENGER","layer":"SELLING_AGENT"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/commissions/distribute", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"basePrice":"200.00",
		"totalCommission":"20.00",
		"distribution":{"MARINE_AGENT":"10.00","SELLING_AGENT":"10.00"},
		"appliedRules":[{"ruleId":"com-1","ruleName":"Standard commission","commission":"20.00"}]
	}`, rec.Body.String())
}

func TestApplyPromotion(t *testing.T) {
	t.Run("returns selection with breakdown", func(t *testing.T) {
		promo := &stubApplyPromotion{selection: &promodomain.Selection{
			Applied:        true,
			PromotionID:    "promo-1",
			Name:           "Summer bundle",
			Basis:          promodomain.BasisPeriod,
			Discount:       dec("33.33"),
			CandidateCount: 3,
			Breakdown: []promodomain.CategoryDiscount{
				{Category: domain.ServicePassenger, Amount: dec("33.33"), Detail: "buy 3 get 1"},
			},
		}}
		router := newTestRouter(nil, nil, promo, nil)

		body := `{"tripId":"trip-42","cart":[{"category":"PASSENGER","quantity":4,"unitPrice":"25"}]}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/promotions/apply", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"applied":true,
			"promotionId":"promo-1",
			"name":"Summer bundle",
			"basis":"PERIOD",
			"discount":"33.33",
			"candidateCount":3,
			"breakdown":[{"category":"PASSENGER","amount":"33.33","detail":"buy 3 get 1"}]
		}`, rec.Body.String())

		require.NotNil(t, promo.got)
		assert.Equal(t, "trip-42", promo.got.TripID)
		require.Len(t, promo.got.Cart, 1)
		assert.Equal(t, int64(4), promo.got.Cart[0].Quantity)
	})

	t.Run("not applied still reports candidate count", func(t *testing.T) {
		promo := &stubApplyPromotion{selection: &promodomain.Selection{CandidateCount: 2}}
		router := newTestRouter(nil, nil, promo, nil)

		body := `{"cart":[{"category":"PASSENGER","quantity":1,"unitPrice":"25"}]}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/promotions/apply", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"applied":false,"discount":"0.00","candidateCount":2}`, rec.Body.String())
	})
}

func TestListRules(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		rules := &stubListRules{result: &contracts.RuleListResult{
			Rules: []contracts.RuleSummary{
				{
					ID:            "rule-1",
					Name:          "High season",
					Family:        "adjustment",
					Kind:          "MARKUP",
					Provider:      "provider-1",
					Status:        "ACTIVE",
					EffectiveDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
					ExpiryDate:    &expiry,
				},
			},
			TotalCount: 1,
		}}
		router := newTestRouter(nil, nil, nil, rules)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rules?family=adjustment&provider=provider-1&limit=10&offset=20", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, rules.got)
		assert.Equal(t, "adjustment", rules.got.Family)
		assert.Equal(t, "provider-1", rules.got.Provider)
		assert.Equal(t, int64(10), rules.got.Limit)
		assert.Equal(t, int64(20), rules.got.Offset)
		assert.Contains(t, rec.Body.String(), `"totalCount":1`)
		assert.Contains(t, rec.Body.String(), `"expiryDate":"2026-12-31T00:00:00Z"`)
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		router := newTestRouter(nil, nil, nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rules?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
