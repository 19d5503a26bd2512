package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/harborline/tariff-service/internal/app/rating/contracts"
	"github.com/harborline/tariff-service/internal/app/rating/domain"
	"github.com/harborline/tariff-service/internal/models/m_partner"
	"github.com/harborline/tariff-service/internal/pkg/query"
)

// PartnerRepo implements PartnerRepository for Spanner.
type PartnerRepo struct {
	client *spanner.Client
}

// NewPartnerRepo creates a PartnerRepo.
func NewPartnerRepo(client *spanner.Client) contracts.PartnerRepository {
	return &PartnerRepo{client: client}
}

// ListPartners fetches every partner row. The hierarchy is small (tens
// of partners per installation), so the tree is rebuilt per evaluation
// rather than cached.
func (r *PartnerRepo) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	stmt := query.From(m_partner.TableName).
		Select(m_partner.ReadColumns...).
		OrderBy(m_partner.PartnerID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var partners []domain.Partner
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query partners: %w", err)
		}
		var data m_partner.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse partner row: %w", err)
		}
		p := domain.Partner{
			ID:    data.PartnerID,
			Name:  data.Name,
			Layer: domain.Layer(data.Layer),
		}
		if data.ParentID.Valid {
			p.ParentID = data.ParentID.StringVal
		}
		partners = append(partners, p)
	}
	return partners, nil
}
