package models

type Plan struct {
	Name      string
	Price     int
	Interval  string
	TrialDays int
	Features  []string
	ProductID string
}

// DefaultPlans returns the two plans shown on the pricing page. Product IDs
// come from configuration so each deployment can point at its own catalog.
func DefaultPlans(baseProductID, plusProductID string) []Plan {
	return []Plan{
		{
			Name:      "Base",
			Price:     8,
			Interval:  "month",
			TrialDays: 14,
			Features: []string{
				"Unlimited Usage",
				"Unlimited Workspace Members",
				"Email Support",
			},
			ProductID: baseProductID,
		},
		{
			Name:      "Plus",
			Price:     12,
			Interval:  "month",
			TrialDays: 14,
			Features: []string{
				"Everything in Base, and:",
				"Early Access to New Features",
				"24/7 Support + Slack Access",
			},
			ProductID: plusProductID,
		},
	}
}

func FindPlan(plans []Plan, productID string) (Plan, bool) {
	for _, p := range plans {
		if p.ProductID == productID {
			return p, true
		}
	}
	return Plan{}, false
}
