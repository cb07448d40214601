package catalog

// Plan describes one pricing tier shown on the marketing site.
type Plan struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Period   string   `json:"period"`
	Popular  bool     `json:"popular,omitempty"`
	Features []string `json:"features"`
}

// DefaultPlans returns the built-in three-tier catalog. It seeds the plans
// table on startup and serves as the fallback when the store is unreachable,
// so the pricing endpoint always answers with exactly these three tiers.
func DefaultPlans() []Plan {
	return []Plan{
		{
			Name:   "Free",
			Price:  0,
			Period: "mo",
			Features: []string{
				"Basic analytics",
				"Community support",
				"Up to 3 projects",
			},
		},
		{
			Name:    "Pro",
			Price:   19,
			Period:  "mo",
			Popular: true,
			Features: []string{
				"Unlimited projects",
				"Priority support",
				"Team collaboration",
				"API access",
			},
		},
		{
			Name:   "Business",
			Price:  49,
			Period: "mo",
			Features: []string{
				"SSO & SAML",
				"Custom roles",
				"Audit logs",
				"Dedicated support",
			},
		},
	}
}
