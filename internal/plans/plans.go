// Package plans holds the static pricing reference data shown on the plans
// view. Plans are fixtures: immutable, never fetched or persisted.
package plans

// Plan is one pricing tier.
type Plan struct {
	ID           string
	Name         string
	EmailsPerDay int
	Price        int
	Features     []string
	Popular      bool
}

var all = []Plan{
	{
		ID:           "1",
		Name:         "Starter",
		EmailsPerDay: 500,
		Price:        29,
		Features: []string{
			"Professional template design",
			"Basic compliance check",
			"Email support",
			"1 revision included",
			"Mobile responsive design",
		},
	},
	{
		ID:           "2",
		Name:         "Professional",
		EmailsPerDay: 2000,
		Price:        89,
		Popular:      true,
		Features: []string{
			"Everything in Starter",
			"Priority support",
			"Advanced compliance check",
			"3 revisions included",
			"A/B testing templates",
			"Analytics integration",
		},
	},
	{
		ID:           "3",
		Name:         "Enterprise",
		EmailsPerDay: 10000,
		Price:        299,
		Features: []string{
			"Everything in Professional",
			"Dedicated account manager",
			"Unlimited revisions",
			"Custom branding",
			"API access",
			"Advanced reporting",
		},
	},
}

// All returns every plan in display order.
func All() []Plan {
	return all
}

// ByID returns the plan with the given id, or nil.
func ByID(id string) *Plan {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}
