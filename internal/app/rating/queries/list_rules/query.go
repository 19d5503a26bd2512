package list_rules

import (
	"context"

	"github.com/harborline/tariff-service/internal/app/rating/contracts"
)

// Request contains filtering parameters for listing rules.
type Request struct {
	Family   string // "adjustment" or "commission", empty for both
	Provider string
	Status   string
	Limit    int64
	Offset   int64
}

// Query handles the list rules query use case.
type Query struct {
	readModel contracts.RuleReadModel
}

// NewQuery creates a new list rules query.
func NewQuery(readModel contracts.RuleReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute lists rules matching the filter with pagination.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.RuleListResult, error) {
	return q.readModel.ListRules(ctx, &contracts.RuleListFilter{
		Family:   req.Family,
		Provider: req.Provider,
		Status:   req.Status,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
}
