package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/models/m_rule"
	"github.com/harborline/tariff-service/internal/pkg/query"
)

const defaultPageSize = 50

// RuleReadModelImpl implements the admin rule listing for Spanner.
type RuleReadModelImpl struct {
	client *spanner.Client
}

// NewRuleReadModel creates a RuleReadModelImpl.
func NewRuleReadModel(client *spanner.Client) contracts.RuleReadModel {
	return &RuleReadModelImpl{client: client}
}

// ListRules returns one page of rules plus the unpaginated total for
// the same filter.
func (rm *RuleReadModelImpl) ListRules(ctx context.Context, filter *contracts.RuleListFilter) (*contracts.RuleListResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	base := query.From(m_rule.TableName).
		Where(query.Eq(m_rule.IsDeleted, false))
	if filter.Family != "" {
		base = base.Where(query.Eq(m_rule.Family, filter.Family))
	}
	if filter.Provider != "" {
		base = base.Where(query.Eq(m_rule.Provider, filter.Provider))
	}
	if filter.Status != "" {
		base = base.Where(query.Eq(m_rule.Status, filter.Status))
	}

	pageStmt := base.
		Select(
			m_rule.RuleID, m_rule.RuleName, m_rule.Family, m_rule.Kind,
			m_rule.Provider, m_rule.EffectiveDate, m_rule.ExpiryDate, m_rule.Status,
		).
		OrderBy(m_rule.RuleID, query.Asc).
		Limit(limit).
		Offset(filter.Offset).
		Build()

	iter := rm.client.Single().Query(ctx, pageStmt)
	defer iter.Stop()

	result := &contracts.RuleListResult{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list rules: %w", err)
		}

		var summary contracts.RuleSummary
		var kind spanner.NullString
		var expiry spanner.NullTime
		if err := row.Columns(
			&summary.ID, &summary.Name, &summary.Family, &kind,
			&summary.Provider, &summary.EffectiveDate, &expiry, &summary.Status,
		); err != nil {
			return nil, fmt.Errorf("parse rule summary: %w", err)
		}
		if kind.Valid {
			summary.Kind = kind.StringVal
		}
		if expiry.Valid {
			t := expiry.Time
			summary.ExpiryDate = &t
		}
		result.Rules = append(result.Rules, summary)
	}

	countStmt := base.Count().Build()
	countIter := rm.client.Single().Query(ctx, countStmt)
	defer countIter.Stop()

	row, err := countIter.Next()
	if err != nil {
		return nil, fmt.Errorf("count rules: %w", err)
	}
	if err := row.Columns(&result.TotalCount); err != nil {
		return nil, fmt.Errorf("parse rule count: %w", err)
	}

	return result, nil
}
