package catalog

import "fmt"

// Plan describes a purchasable subscription plan. PriceMinorUnits is the
// price in the smallest currency unit (kopecks for RUB) to avoid floating
// point in money math; DurationDays is the entitlement length granted on a
// successful payment.
type Plan struct {
	ID              string `bson:"_id" json:"id" yaml:"id"`
	Title           string `bson:"title" json:"title" yaml:"title"`
	PriceMinorUnits int64  `bson:"price" json:"priceMinorUnits" yaml:"price"`
	Currency        string `bson:"currency" json:"currency" yaml:"currency"`
	PeriodLabel     string `bson:"periodLabel" json:"periodLabel" yaml:"periodLabel"`
	Description     string `bson:"description" json:"description" yaml:"description"`
	DurationDays    int    `bson:"durationDays" json:"durationDays" yaml:"durationDays"`
	DisplayOrder    int    `bson:"displayOrder" json:"displayOrder" yaml:"displayOrder"`
	Popular         bool   `bson:"isPopular,omitempty" json:"isPopular,omitempty" yaml:"isPopular,omitempty"`
}

// Validate checks the invariants every usable plan must satisfy.
func (p Plan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty plan ID", ErrInvalidPlan)
	}
	if p.PriceMinorUnits <= 0 {
		return fmt.Errorf("%w: plan %s has non-positive price %d", ErrInvalidPlan, p.ID, p.PriceMinorUnits)
	}
	if p.DurationDays <= 0 {
		return fmt.Errorf("%w: plan %s has non-positive duration %d", ErrInvalidPlan, p.ID, p.DurationDays)
	}
	if p.Currency == "" {
		return fmt.Errorf("%w: plan %s has no currency", ErrInvalidPlan, p.ID)
	}
	return nil
}
