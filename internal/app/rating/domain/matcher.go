package domain

// Matches reports whether the rule's conditions accept the line context.
// All axes are AND-combined; within an axis an empty list means "no
// restriction". Pure and deterministic, no side effects.
//
// A rule whose ServiceTypes set is empty matches nothing. The rule CRUD
// side always writes at least one service type, so an empty set is a
// degenerate record, and refusing to match it is the conservative
// reading of "rule applies to the listed service types".
func (c *RuleConditions) Matches(lc LineContext) bool {
	if !containsServiceType(c.ServiceTypes, lc.ServiceType) {
		return false
	}

	if lc.Layer != c.AppliedToLayer {
		return false
	}

	// Wildcard scope accepts any partner, including none. A concrete
	// scope accepts exactly that partner.
	if c.PartnerScope != nil {
		if lc.Partner == "" || lc.Partner != *c.PartnerScope {
			return false
		}
	}

	if c.VisaType != "" && c.VisaType != lc.VisaType {
		return false
	}

	if len(c.Routes) > 0 {
		if lc.Route == nil || !containsRoute(c.Routes, *lc.Route) {
			return false
		}
	}

	// Only the condition lists for the context's own category apply.
	switch lc.ServiceType {
	case ServicePassenger:
		return emptyOrContains(c.PassengerTypes, lc.PassengerType) &&
			emptyOrContains(c.PassengerCabins, lc.CabinClass)
	case ServiceCargo:
		return emptyOrContains(c.CargoTypes, lc.CargoType)
	case ServiceVehicle:
		return emptyOrContains(c.VehicleTypes, lc.VehicleType)
	}

	return true
}

func containsServiceType(list []ServiceType, st ServiceType) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

func containsRoute(list []Route, r Route) bool {
	for _, candidate := range list {
		if candidate == r {
			return true
		}
	}
	return false
}

// emptyOrContains treats an empty list as unrestricted. A context that
// lacks the attribute a non-empty list restricts on never satisfies it,
// so a rule requiring, say, a passenger type conservatively skips items
// that did not declare one.
func emptyOrContains(list []string, v string) bool {
	if len(list) == 0 {
		return true
	}
	if v == "" {
		return false
	}
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
