package domain

import "time"

// Resolver filters candidate rules through the structural invariant and
// the eligibility matcher. It imposes no ordering: the output preserves
// the candidate order the caller supplied.
//
// With a PartnerTree attached, wildcard-scoped rules are additionally
// limited to partners that actually descend from the rule's provider at
// the target layer. Without a tree the wildcard accepts any partner at
// the layer, which matches the behavior of callers that price before
// the hierarchy is loaded.
type Resolver struct {
	tree *PartnerTree
}

// NewResolver creates a Resolver without partner-hierarchy scoping.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewScopedResolver creates a Resolver that checks wildcard rules
// against the given partner hierarchy.
func NewScopedResolver(tree *PartnerTree) *Resolver {
	return &Resolver{tree: tree}
}

// ResolveAdjustmentRules returns the candidates eligible for the context at t.
func (r *Resolver) ResolveAdjustmentRules(candidates []AdjustmentRule, lc LineContext, t time.Time) []AdjustmentRule {
	matched := make([]AdjustmentRule, 0, len(candidates))
	for _, rule := range candidates {
		if r.eligible(&rule.RuleConditions, lc, t) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// ResolveCommissionRules returns the candidates eligible for the context at t.
func (r *Resolver) ResolveCommissionRules(candidates []CommissionRule, lc LineContext, t time.Time) []CommissionRule {
	matched := make([]CommissionRule, 0, len(candidates))
	for _, rule := range candidates {
		if r.eligible(&rule.RuleConditions, lc, t) {
			matched = append(matched, rule)
		}
	}
	return matched
}

func (r *Resolver) eligible(c *RuleConditions, lc LineContext, t time.Time) bool {
	if !c.CurrentAt(t) || !c.Matches(lc) {
		return false
	}
	if r.tree != nil && c.PartnerScope == nil && lc.Partner != "" {
		return r.tree.WithinScope(c.Provider, c.AppliedToLayer, lc.Partner)
	}
	return true
}
