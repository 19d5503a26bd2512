package http

import (
	"time"

	"github.com/shopspring/decimal"

	promodomain "github.com/harborline/tariff-service/internal/app/promotion/domain"
	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
)

// --- Request DTOs ---

type RouteDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type LineContextDTO struct {
	ServiceType   string    `json:"serviceType"`
	Layer         string    `json:"layer"`
	Partner       string    `json:"partner,omitempty"`
	Route         *RouteDTO `json:"route,omitempty"`
	VisaType      string    `json:"visaType,omitempty"`
	PassengerType string    `json:"passengerType,omitempty"`
	CabinClass    string    `json:"cabinClass,omitempty"`
	CargoType     string    `json:"cargoType,omitempty"`
	VehicleType   string    `json:"vehicleType,omitempty"`
}

type QuoteRequest struct {
	Provider  string          `json:"provider"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Context   LineContextDTO  `json:"context"`
}

type CartItemDTO struct {
	Category      string          `json:"category"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal,omitempty"`
	PassengerType string          `json:"passengerType,omitempty"`
	CabinClass    string          `json:"cabinClass,omitempty"`
	CargoType     string          `json:"cargoType,omitempty"`
	VehicleType   string          `json:"vehicleType,omitempty"`
}

type ApplyPromotionRequest struct {
	TripID string        `json:"tripId,omitempty"`
	Cart   []CartItemDTO `json:"cart"`
}

// --- Response DTOs ---

type AppliedAdjustmentDTO struct {
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Kind       string `json:"kind"`
	Adjustment string `json:"adjustment"`
	Commission string `json:"commission"`
}

type QuoteResponse struct {
	BasePrice       string                 `json:"basePrice"`
	FinalPrice      string                 `json:"finalPrice"`
	TotalAdjustment string                 `json:"totalAdjustment"`
	TotalCommission string                 `json:"totalCommission"`
	AppliedRules    []AppliedAdjustmentDTO `json:"appliedRules"`
}

type AppliedCommissionDTO struct {
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Commission string `json:"commission"`
}

type DistributeResponse struct {
	BasePrice       string                 `json:"basePrice"`
	TotalCommission string                 `json:"totalCommission"`
	Distribution    map[string]string      `json:"distribution"`
	AppliedRules    []AppliedCommissionDTO `json:"appliedRules"`
}

type CategoryDiscountDTO struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Detail   string `json:"detail,omitempty"`
	Warning  string `json:"warning,omitempty"`
}

type ApplyPromotionResponse struct {
	Applied        bool                  `json:"applied"`
	PromotionID    string                `json:"promotionId,omitempty"`
	Name           string                `json:"name,omitempty"`
	Basis          string                `json:"basis,omitempty"`
	Discount       string                `json:"discount"`
	Breakdown      []CategoryDiscountDTO `json:"breakdown,omitempty"`
	CandidateCount int                   `json:"candidateCount"`
}

type RuleSummaryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Family        string `json:"family"`
	Kind          string `json:"kind,omitempty"`
	Provider      string `json:"provider"`
	Status        string `json:"status"`
	EffectiveDate string `json:"effectiveDate"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
}

type ListRulesResponse struct {
	Rules      []RuleSummaryDTO `json:"rules"`
	TotalCount int64            `json:"totalCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Mapping ---

func (d *LineContextDTO) toDomain() domain.LineContext {
	lc := domain.LineContext{
		ServiceType:   domain.ServiceType(d.ServiceType),
		Layer:         domain.Layer(d.Layer),
		Partner:       d.Partner,
		VisaType:      d.VisaType,
		PassengerType: d.PassengerType,
		CabinClass:    d.CabinClass,
		CargoType:     d.CargoType,
		VehicleType:   d.VehicleType,
	}
	if d.Route != nil {
		lc.Route = &domain.Route{From: d.Route.From, To: d.Route.To}
	}
	return lc
}

func toQuoteResponse(result *domain.AdjustmentResult) *QuoteResponse {
	resp := &QuoteResponse{
		BasePrice:       money(result.BasePrice),
		FinalPrice:      money(result.FinalPrice),
		TotalAdjustment: money(result.TotalAdjustment),
		TotalCommission: money(result.TotalCommission),
		AppliedRules:    []AppliedAdjustmentDTO{},
	}
	for _, a := range result.Applied {
		resp.AppliedRules = append(resp.AppliedRules, AppliedAdjustmentDTO{
			RuleID:     a.RuleID,
			RuleName:   a.RuleName,
			Kind:       string(a.Kind),
			Adjustment: money(a.Adjustment),
			Commission: money(a.Commission),
		})
	}
	return resp
}

func toDistributeResponse(result *domain.CommissionResult) *DistributeResponse {
	resp := &DistributeResponse{
		BasePrice:       money(result.BasePrice),
		TotalCommission: money(result.TotalCommission),
		Distribution:    map[string]string{},
		AppliedRules:    []AppliedCommissionDTO{},
	}
	for layer, amount := range result.Distribution {
		resp.Distribution[string(layer)] = money(amount)
	}
	for _, a := range result.Applied {
		resp.AppliedRules = append(resp.AppliedRules, AppliedCommissionDTO{
			RuleID:     a.RuleID,
			RuleName:   a.RuleName,
			Commission: money(a.Commission),
		})
	}
	return resp
}

func toCart(items []CartItemDTO) promodomain.Cart {
	cart := make(promodomain.Cart, 0, len(items))
	for _, item := range items {
		cart = append(cart, promodomain.CartItem{
			Category:      domain.ServiceType(item.Category),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LineTotal:     item.LineTotal,
			PassengerType: item.PassengerType,
			CabinClass:    item.CabinClass,
			CargoType:     item.CargoType,
			VehicleType:   item.VehicleType,
		})
	}
	return cart
}

func toApplyPromotionResponse(selection *promodomain.Selection) *ApplyPromotionResponse {
	resp := &ApplyPromotionResponse{
		Applied:        selection.Applied,
		PromotionID:    selection.PromotionID,
		Name:           selection.Name,
		Basis:          string(selection.Basis),
		Discount:       money(selection.Discount),
		CandidateCount: selection.CandidateCount,
	}
	for _, cd := range selection.Breakdown {
		resp.Breakdown = append(resp.Breakdown, CategoryDiscountDTO{
			Category: string(cd.Category),
			Amount:   money(cd.Amount),
			Detail:   cd.Detail,
			Warning:  cd.Warning,
		})
	}
	return resp
}

func toListRulesResponse(result *contracts.RuleListResult) *ListRulesResponse {
	resp := &ListRulesResponse{
		Rules:      []RuleSummaryDTO{},
		TotalCount: result.TotalCount,
	}
	for _, r := range result.Rules {
		dto := RuleSummaryDTO{
			ID:            r.ID,
			Name:          r.Name,
			Family:        r.Family,
			Kind:          r.Kind,
			Provider:      r.Provider,
			Status:        r.Status,
			EffectiveDate: r.EffectiveDate.Format(time.RFC3339),
		}
		if r.ExpiryDate != nil {
			dto.ExpiryDate = r.ExpiryDate.Format(time.RFC3339)
		}
		resp.Rules = append(resp.Rules, dto)
	}
	return resp
}

// money renders a decimal at 2 fractional digits for the wire.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
