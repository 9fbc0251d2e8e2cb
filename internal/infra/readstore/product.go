package readstore

import (
	"context"

	"website-rentals/internal/domain/product"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/pgconv"
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type productReadStore struct {
	db infra.DBTX
}

func NewProductReadStore(db infra.DBTX) queries.ProductReadStore {
	return &productReadStore{db: db}
}

const findProductByIDQuery = `
SELECT id, name, description, kind, rentable, preparation_time, family_id, availability_strategy
FROM products
WHERE id = $1
`

const listFamilyVariantIDsQuery = `
SELECT id
FROM products
WHERE family_id = $1
ORDER BY id
`

const listFamilyPricingRulesQuery = `
SELECT id, duration, unit, price, start_time, end_time
FROM pricing_rules
WHERE family_id = $1
ORDER BY unit, duration
`

func (s *productReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var (
		pv          queries.ProductView
		description pgtype.Text
		kind        string
		strategy    string
		prep        pgtype.Numeric
	)
	row := s.db.QueryRow(ctx, findProductByIDQuery, id)
	if err := row.Scan(&pv.ID, &pv.Name, &description, &kind, &pv.Rentable, &prep, &pv.FamilyID, &strategy); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	pv.Description = pgconv.StringPtrFromPgtype(description)
	pv.Kind = product.Kind(kind)
	pv.Strategy = product.AvailabilityStrategy(strategy)

	prepTime, err := pgconv.Float64FromNumeric(prep)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid preparation time", err)
	}
	pv.PreparationTime = prepTime

	variantIDs, err := s.listVariantIDs(ctx, pv.FamilyID)
	if err != nil {
		return nil, err
	}
	pv.VariantIDs = variantIDs

	rules, err := s.listPricingRules(ctx, pv.FamilyID)
	if err != nil {
		return nil, err
	}
	pv.PricingRules = rules

	return &pv, nil
}

func (s *productReadStore) listVariantIDs(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, listFamilyVariantIDsQuery, familyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list family variants", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan variant id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read family variants", err)
	}
	return ids, nil
}

func (s *productReadStore) listPricingRules(ctx context.Context, familyID uuid.UUID) ([]product.PricingRule, error) {
	rows, err := s.db.Query(ctx, listFamilyPricingRulesQuery, familyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var rules []product.PricingRule
	for rows.Next() {
		var (
			rule product.PricingRule
			unit string

			duration, price, startTime, endTime pgtype.Numeric
		)
		if err := rows.Scan(&rule.ID, &duration, &unit, &price, &startTime, &endTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		rule.Unit = product.Unit(unit)

		for _, conv := range []struct {
			src pgtype.Numeric
			dst *float64
		}{
			{duration, &rule.Duration},
			{price, &rule.Price},
			{startTime, &rule.StartTime},
			{endTime, &rule.EndTime},
		} {
			v, err := pgconv.Float64FromNumeric(conv.src)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid pricing rule value", err)
			}
			*conv.dst = v
		}

		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}
	return rules, nil
}
