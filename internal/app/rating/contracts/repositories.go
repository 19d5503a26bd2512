package contracts

import (
	"context"
	"time"

	"github.com/harborline/tariff-service/internal/app/rating/domain"
)

// RuleRepository fetches candidate rules already narrowed to the
// structural invariant (active, not deleted, inside the validity
// window) for a provider and service type. The engine re-checks the
// dates; the store-side filter just keeps candidate sets small.
type RuleRepository interface {
	ListAdjustmentRules(ctx context.Context, provider string, st domain.ServiceType, at time.Time) ([]domain.AdjustmentRule, error)
	ListCommissionRules(ctx context.Context, provider string, st domain.ServiceType, at time.Time) ([]domain.CommissionRule, error)
}

// PartnerRepository fetches the flat partner list the PartnerTree is
// assembled from.
type PartnerRepository interface {
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// RuleListFilter narrows the admin rule listing.
type RuleListFilter struct {
	Family   string
	Provider string
	Status   string
	Limit    int64
	Offset   int64
}

// RuleSummary is the listing projection of a rule row.
type RuleSummary struct {
	ID            string
	Name          string
	Family        string
	Kind          string
	Provider      string
	Status        string
	EffectiveDate time.Time
	ExpiryDate    *time.Time
}

// RuleListResult is a page of rules plus the unpaginated total.
type RuleListResult struct {
	Rules      []RuleSummary
	TotalCount int64
}

// RuleReadModel serves the admin/diagnostics listing.
type RuleReadModel interface {
	ListRules(ctx context.Context, filter *RuleListFilter) (*RuleListResult, error)
}
