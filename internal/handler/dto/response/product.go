package response

import (
	"website-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleResponse struct {
	ID        uuid.UUID `json:"id"`
	Duration  float64   `json:"duration"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type ProductResponse struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Description     *string               `json:"description,omitempty"`
	Kind            string                `json:"kind"`
	Rentable        bool                  `json:"rentable"`
	PreparationTime float64               `json:"preparation_time"`
	Strategy        string                `json:"availability_strategy"`
	PricingRules    []PricingRuleResponse `json:"pricing_rules"`
}

func FromProductView(pv *queries.ProductView) *ProductResponse {
	rules := make([]PricingRuleResponse, len(pv.PricingRules))
	for i, rule := range pv.PricingRules {
		rules[i] = PricingRuleResponse{
			ID:        rule.ID,
			Duration:  rule.Duration,
			Unit:      string(rule.Unit),
			Price:     rule.Price,
			StartTime: rule.StartClock(),
			EndTime:   rule.EndClock(),
		}
	}
	return &ProductResponse{
		ID:              pv.ID,
		Name:            pv.Name,
		Description:     pv.Description,
		Kind:            string(pv.Kind),
		Rentable:        pv.Rentable,
		PreparationTime: pv.PreparationTime,
		Strategy:        string(pv.Strategy),
		PricingRules:    rules,
	}
}
