package domain

// LineContext describes a single bookable line item being priced: which
// category it belongs to, who is selling it, and the attributes the
// category-specific rule axes match against. Callers leave fields empty
// when the axis does not apply; a rule restricting a missing axis simply
// does not match.
type LineContext struct {
	ServiceType ServiceType
	Layer       Layer

	// Partner is the selling partner's id. Empty means the caller is
	// pricing without a partner, in which case only wildcard-scoped
	// rules can match.
	Partner string

	Route    *Route
	VisaType string

	PassengerType string
	CabinClass    string
	CargoType     string
	VehicleType   string
}
