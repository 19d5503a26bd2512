package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func baseConditions() RuleConditions {
	return RuleConditions{
		Provider:       "provider-1",
		AppliedToLayer: LayerSellingAgent,
		ServiceTypes:   []ServiceType{ServicePassenger},
		EffectiveDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:         StatusActive,
	}
}

func passengerContext() LineContext {
	return LineContext{
		ServiceType: ServicePassenger,
		Layer:       LayerSellingAgent,
		Partner:     "agent-7",
	}
}

func TestRuleConditions_Matches_ServiceType(t *testing.T) {
	t.Run("matches listed service type", func(t *testing.T) {
		c := baseConditions()
		assert.True(t, c.Matches(passengerContext()))
	})

	t.Run("rejects unlisted service type", func(t *testing.T) {
		c := baseConditions()
		lc := passengerContext()
		lc.ServiceType = ServiceCargo
		assert.False(t, c.Matches(lc))
	})

	t.Run("empty service type set matches nothing", func(t *testing.T) {
		c := baseConditions()
		c.ServiceTypes = nil
		assert.False(t, c.Matches(passengerContext()))
	})
}

func TestRuleConditions_Matches_Layer(t *testing.T) {
	c := baseConditions()
	lc := passengerContext()
	lc.Layer = LayerCommercialAgent
	assert.False(t, c.Matches(lc))
}

func TestRuleConditions_Matches_PartnerScope(t *testing.T) {
	t.Run("wildcard matches every partner at the layer", func(t *testing.T) {
		c := baseConditions()
		for _, partner := range []string{"agent-7", "agent-8", "agent-9"} {
			lc := passengerContext()
			lc.Partner = partner
			assert.True(t, c.Matches(lc), "partner %s", partner)
		}
	})

	t.Run("wildcard matches a caller with no partner", func(t *testing.T) {
		c := baseConditions()
		lc := passengerContext()
		lc.Partner = ""
		assert.True(t, c.Matches(lc))
	})

	t.Run("concrete scope matches only that partner", func(t *testing.T) {
		c := baseConditions()
		c.PartnerScope = strPtr("agent-7")

		lc := passengerContext()
		assert.True(t, c.Matches(lc))

		lc.Partner = "agent-8"
		assert.False(t, c.Matches(lc))
	})

	t.Run("concrete scope rejects a caller with no partner", func(t *testing.T) {
		c := baseConditions()
		c.PartnerScope = strPtr("agent-7")
		lc := passengerContext()
		lc.Partner = ""
		assert.False(t, c.Matches(lc))
	})
}

func TestRuleConditions_Matches_VisaType(t *testing.T) {
	c := baseConditions()
	c.VisaType = "SCHENGEN"

	lc := passengerContext()
	assert.False(t, c.Matches(lc), "context without visa type")

	lc.VisaType = "SCHENGEN"
	assert.True(t, c.Matches(lc))

	lc.VisaType = "TRANSIT"
	assert.False(t, c.Matches(lc))
}

func TestRuleConditions_Matches_Routes(t *testing.T) {
	c := baseConditions()
	c.Routes = []Route{
		{From: "JED", To: "SWK"},
		{From: "SWK", To: "JED"},
	}

	t.Run("matches a listed route", func(t *testing.T) {
		lc := passengerContext()
		lc.Route = &Route{From: "SWK", To: "JED"}
		assert.True(t, c.Matches(lc))
	})

	t.Run("route match is exact and directed", func(t *testing.T) {
		lc := passengerContext()
		lc.Route = &Route{From: "JED", To: "PZU"}
		assert.False(t, c.Matches(lc))
	})

	t.Run("restricted routes reject a context without a route", func(t *testing.T) {
		lc := passengerContext()
		lc.Route = nil
		assert.False(t, c.Matches(lc))
	})

	t.Run("empty route list means any route", func(t *testing.T) {
		unrestricted := baseConditions()
		lc := passengerContext()
		lc.Route = &Route{From: "JED", To: "PZU"}
		assert.True(t, unrestricted.Matches(lc))
	})
}

func TestRuleConditions_Matches_CategoryAttributes(t *testing.T) {
	t.Run("passenger type and cabin both restricted", func(t *testing.T) {
		c := baseConditions()
		c.PassengerTypes = []string{"ADULT", "CHILD"}
		c.PassengerCabins = []string{"ECONOMY"}

		lc := passengerContext()
		lc.PassengerType = "ADULT"
		lc.CabinClass = "ECONOMY"
		assert.True(t, c.Matches(lc))

		lc.CabinClass = "FIRST"
		assert.False(t, c.Matches(lc))
	})

	t.Run("missing context attribute never satisfies a restricted axis", func(t *testing.T) {
		c := baseConditions()
		c.PassengerTypes = []string{"ADULT"}
		lc := passengerContext()
		assert.False(t, c.Matches(lc), "no passenger type supplied")
	})

	t.Run("only the matching category's lists apply", func(t *testing.T) {
		c := baseConditions()
		c.ServiceTypes = []ServiceType{ServiceCargo}
		// Passenger restrictions are irrelevant to a cargo item.
		c.PassengerTypes = []string{"ADULT"}
		c.CargoTypes = []string{"REEFER"}

		lc := LineContext{
			ServiceType: ServiceCargo,
			Layer:       LayerSellingAgent,
			Partner:     "agent-7",
			CargoType:   "REEFER",
		}
		assert.True(t, c.Matches(lc))
	})

	t.Run("vehicle type restriction", func(t *testing.T) {
		c := baseConditions()
		c.ServiceTypes = []ServiceType{ServiceVehicle}
		c.VehicleTypes = []string{"SEDAN", "SUV"}

		lc := LineContext{
			ServiceType: ServiceVehicle,
			Layer:       LayerSellingAgent,
			VehicleType: "TRUCK",
		}
		assert.False(t, c.Matches(lc))

		lc.VehicleType = "SUV"
		assert.True(t, c.Matches(lc))
	})
}

func TestRuleConditions_CurrentAt(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("effective today with open expiry matches today and later", func(t *testing.T) {
		c := baseConditions()
		c.EffectiveDate = today

		assert.True(t, c.CurrentAt(today))
		assert.True(t, c.CurrentAt(today.AddDate(1, 0, 0)))
		assert.False(t, c.CurrentAt(today.AddDate(0, 0, -1)), "yesterday must not match")
	})

	t.Run("expiry date is inclusive", func(t *testing.T) {
		c := baseConditions()
		expiry := today.AddDate(0, 1, 0)
		c.ExpiryDate = timePtr(expiry)

		assert.True(t, c.CurrentAt(expiry))
		assert.False(t, c.CurrentAt(expiry.Add(time.Second)))
	})

	t.Run("inactive and deleted rules are never current", func(t *testing.T) {
		inactive := baseConditions()
		inactive.Status = StatusInactive
		assert.False(t, inactive.CurrentAt(today))

		deleted := baseConditions()
		deleted.IsDeleted = true
		assert.False(t, deleted.CurrentAt(today))
	})
}

func TestResolver_PreservesCandidateOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mk := func(id string) AdjustmentRule {
		return AdjustmentRule{ID: id, Kind: KindMarkup, ValueType: ValueAmount, RuleConditions: baseConditions()}
	}
	rules := []AdjustmentRule{mk("b"), mk("a"), mk("c")}

	matched := NewResolver().ResolveAdjustmentRules(rules, passengerContext(), now)

	ids := make([]string, len(matched))
	for i, r := range matched {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestResolver_ScopedWildcard(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tree := NewPartnerTree([]Partner{
		{ID: "provider-1", Name: "Coast Lines", Layer: LayerCompany},
		{ID: "marine-1", Name: "North Marine", Layer: LayerMarineAgent, ParentID: "provider-1"},
		{ID: "agent-7", Name: "Pier 7", Layer: LayerSellingAgent, ParentID: "marine-1"},
		{ID: "provider-2", Name: "Gulf Ferries", Layer: LayerCompany},
		{ID: "agent-9", Name: "Dock 9", Layer: LayerSellingAgent, ParentID: "provider-2"},
	})

	rule := AdjustmentRule{ID: "r1", Kind: KindMarkup, ValueType: ValueAmount, RuleConditions: baseConditions()}

	t.Run("wildcard only covers the provider's own descendants", func(t *testing.T) {
		resolver := NewScopedResolver(tree)

		own := passengerContext() // agent-7 descends from provider-1
		assert.Len(t, resolver.ResolveAdjustmentRules([]AdjustmentRule{rule}, own, now), 1)

		foreign := passengerContext()
		foreign.Partner = "agent-9"
		assert.Empty(t, resolver.ResolveAdjustmentRules([]AdjustmentRule{rule}, foreign, now))
	})

	t.Run("unscoped resolver accepts any partner at the layer", func(t *testing.T) {
		resolver := NewResolver()
		foreign := passengerContext()
		foreign.Partner = "agent-9"
		assert.Len(t, resolver.ResolveAdjustmentRules([]AdjustmentRule{rule}, foreign, now), 1)
	})

	t.Run("expired candidate is dropped even if it matches", func(t *testing.T) {
		expired := rule
		expired.ExpiryDate = timePtr(now.AddDate(0, 0, -1))
		assert.Empty(t, NewResolver().ResolveAdjustmentRules([]AdjustmentRule{expired}, passengerContext(), now))
	})
}
