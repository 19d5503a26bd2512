package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	promodomain "github.com/harborline/tariff-service/internal/app/promotion/domain"
	"github.com/harborline/tariff-service/internal/app/promotion/usecases/apply_best_promotion"
	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/app/rating/queries/list_rules"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/distribute_commission"
	"github.com/harborline/tariff-service/internal/app/rating/usecases/price_item"
)

type priceItemUsecase interface {
	Execute(ctx context.Context, req *price_item.Request) (*domain.AdjustmentResult, error)
}

type distributeCommissionUsecase interface {
	Execute(ctx context.Context, req *distribute_commission.Request) (*domain.CommissionResult, error)
}

type applyBestPromotionUsecase interface {
	Execute(ctx context.Context, req *apply_best_promotion.Request) (*promodomain.Selection, error)
}

type listRulesQuery interface {
	Execute(ctx context.Context, req *list_rules.Request) (*contracts.RuleListResult, error)
}

// Handler serves the pricing HTTP API.
type Handler struct {
	priceItem            priceItemUsecase
	distributeCommission distributeCommissionUsecase
	applyBestPromotion   applyBestPromotionUsecase
	listRules            listRulesQuery
}

// NewHandler creates the HTTP handler with its use case dependencies.
func NewHandler(
	priceItem priceItemUsecase,
	distributeCommission distributeCommissionUsecase,
	applyBestPromotion applyBestPromotionUsecase,
	listRules listRulesQuery,
) *Handler {
	return &Handler{
		priceItem:            priceItem,
		distributeCommission: distributeCommission,
		applyBestPromotion:   applyBestPromotion,
		listRules:            listRules,
	}
}

// Quote prices one booking line through the adjustment rules.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.priceItem.Execute(r.Context(), &price_item.Request{
		Provider:  req.Provider,
		BasePrice: req.BasePrice,
		Context:   req.Context.toDomain(),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(result))
}

// Distribute computes the per-layer commission split for one booking line.
func (h *Handler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.distributeCommission.Execute(r.Context(), &distribute_commission.Request{
		Provider:  req.Provider,
		BasePrice: req.BasePrice,
		Context:   req.Context.toDomain(),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDistributeResponse(result))
}

// ApplyPromotion selects the best promotion for a checkout cart.
func (h *Handler) ApplyPromotion(w http.ResponseWriter, r *http.Request) {
	var req ApplyPromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	selection, err := h.applyBestPromotion.Execute(r.Context(), &apply_best_promotion.Request{
		Cart:   toCart(req.Cart),
		TripID: req.TripID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplyPromotionResponse(selection))
}

// ListRules serves the admin rule listing.
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &list_rules.Request{
		Family:   q.Get("family"),
		Provider: q.Get("provider"),
		Status:   q.Get("status"),
	}
	var err error
	if req.Limit, err = queryInt(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if req.Offset, err = queryInt(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	result, err := h.listRules.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListRulesResponse(result))
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func queryInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &ErrorResponse{Error: msg})
}
