package apply_best_promotion

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/tariff-service/internal/app/promotion/domain"
	rating "github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/pkg/clock"
)

type fakePromotionRepo struct {
	promotions []*domain.Promotion
	err        error
}

func (f *fakePromotionRepo) ListActivePromotions(context.Context) ([]*domain.Promotion, error) {
	return f.promotions, f.err
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func amountPromo(id string, amount string) *domain.Promotion {
	return &domain.Promotion{
		ID:     id,
		Name:   "Promo " + id,
		Status: rating.StatusActive,
		Basis:  domain.BasisPeriod,
		Period: &domain.Period{
			StartAt: testNow.AddDate(0, 0, -7),
			EndAt:   testNow.AddDate(0, 0, 7),
		},
		Passenger: &domain.TicketRules{
			Enabled:  true,
			RuleType: domain.RuleTotalValue,
			TotalValue: &domain.TotalValueRule{
				MinAmount: dec("50"),
				Discount:  domain.ValueDiscount{Type: rating.ValueAmount, Value: dec(amount)},
			},
		},
	}
}

func passengerCart() domain.Cart {
	return domain.Cart{
		{Category: rating.ServicePassenger, Quantity: 2, UnitPrice: dec("60")},
	}
}

func TestApplyBestPromotion(t *testing.T) {
	t.Run("picks the strictly best promotion", func(t *testing.T) {
		repo := &fakePromotionRepo{promotions: []*domain.Promotion{
			amountPromo("promo-a", "20"),
			amountPromo("promo-b", "35"),
		}}
		interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

		selection, err := interactor.Execute(context.Background(), &Request{Cart: passengerCart()})

		require.NoError(t, err)
		assert.True(t, selection.Applied)
		assert.Equal(t, "promo-b", selection.PromotionID)
		assert.True(t, selection.Discount.Equal(dec("35")))
		assert.Equal(t, 2, selection.CandidateCount)
	})

	t.Run("tie breaks deterministically on lowest id", func(t *testing.T) {
		// Repeated runs shuffle worker scheduling but not the outcome.
		for run := 0; run < 20; run++ {
			repo := &fakePromotionRepo{promotions: []*domain.Promotion{
				amountPromo("promo-b", "35"),
				amountPromo("promo-a", "35"),
			}}
			interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

			selection, err := interactor.Execute(context.Background(), &Request{Cart: passengerCart()})

			require.NoError(t, err)
			assert.Equal(t, "promo-a", selection.PromotionID)
		}
	})

	t.Run("many candidates evaluated concurrently stay ordered", func(t *testing.T) {
		repo := &fakePromotionRepo{}
		for i := 0; i < 25; i++ {
			repo.promotions = append(repo.promotions, amountPromo(fmt.Sprintf("promo-%02d", i), "10"))
		}
		repo.promotions = append(repo.promotions, amountPromo("promo-99", "40"))
		interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

		selection, err := interactor.Execute(context.Background(), &Request{Cart: passengerCart()})

		require.NoError(t, err)
		assert.Equal(t, "promo-99", selection.PromotionID)
		assert.Equal(t, 26, selection.CandidateCount)
	})

	t.Run("no eligible promotion is a valid state", func(t *testing.T) {
		promo := amountPromo("promo-a", "20")
		promo.Period = &domain.Period{
			StartAt: testNow.AddDate(0, -2, 0),
			EndAt:   testNow.AddDate(0, -1, 0),
		}
		repo := &fakePromotionRepo{promotions: []*domain.Promotion{promo}}
		interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

		selection, err := interactor.Execute(context.Background(), &Request{Cart: passengerCart()})

		require.NoError(t, err)
		assert.False(t, selection.Applied)
		assert.Equal(t, 0, selection.CandidateCount)
	})

	t.Run("trip id narrows trip promotions", func(t *testing.T) {
		tripPromo := amountPromo("promo-trip", "30")
		tripPromo.Basis = domain.BasisTrip
		tripPromo.Period = nil
		tripPromo.TripID = "trip-42"
		repo := &fakePromotionRepo{promotions: []*domain.Promotion{tripPromo}}
		interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

		selection, err := interactor.Execute(context.Background(), &Request{
			Cart:   passengerCart(),
			TripID: "trip-7",
		})

		require.NoError(t, err)
		assert.False(t, selection.Applied)

		selection, err = interactor.Execute(context.Background(), &Request{
			Cart:   passengerCart(),
			TripID: "trip-42",
		})

		require.NoError(t, err)
		assert.True(t, selection.Applied)
		assert.Equal(t, "promo-trip", selection.PromotionID)
	})

	t.Run("propagates repo failure", func(t *testing.T) {
		repo := &fakePromotionRepo{err: errors.New("spanner unavailable")}
		interactor := NewInteractor(repo, clock.NewFixedClock(testNow))

		_, err := interactor.Execute(context.Background(), &Request{Cart: passengerCart()})

		assert.Error(t, err)
	})
}
