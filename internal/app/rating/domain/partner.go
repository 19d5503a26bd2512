package domain

import "sort"

// Partner is one node of the organizational hierarchy as stored: a flat
// row with a parent reference.
type Partner struct {
	ID       string
	Name     string
	Layer    Layer
	ParentID string // empty for top-level companies
}

type partnerNode struct {
	partner Partner
	parent  *partnerNode
}

// PartnerTree indexes a flat partner list by id with parent pointers
// resolved once, so scope checks during an evaluation never go back to
// the store. A partner whose parent row is missing is kept as a root.
type PartnerTree struct {
	nodes map[string]*partnerNode
}

// NewPartnerTree builds the tree from a flat partner list.
func NewPartnerTree(partners []Partner) *PartnerTree {
	nodes := make(map[string]*partnerNode, len(partners))
	for _, p := range partners {
		nodes[p.ID] = &partnerNode{partner: p}
	}
	for _, n := range nodes {
		if n.partner.ParentID != "" {
			n.parent = nodes[n.partner.ParentID]
		}
	}
	return &PartnerTree{nodes: nodes}
}

// Lookup returns the partner with the given id.
func (t *PartnerTree) Lookup(id string) (Partner, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Partner{}, false
	}
	return n.partner, true
}

// WithinScope reports whether partnerID sits at the given layer and
// descends from (or is) providerID. The walk is bounded by the node
// count so a corrupt parent cycle cannot hang an evaluation.
func (t *PartnerTree) WithinScope(providerID string, layer Layer, partnerID string) bool {
	n, ok := t.nodes[partnerID]
	if !ok || n.partner.Layer != layer {
		return false
	}
	for cur, steps := n, 0; cur != nil && steps <= len(t.nodes); cur, steps = cur.parent, steps+1 {
		if cur.partner.ID == providerID {
			return true
		}
	}
	return false
}

// DescendantsAt returns the ids of providerID's descendants at the given
// layer, sorted for stable output.
func (t *PartnerTree) DescendantsAt(providerID string, layer Layer) []string {
	var out []string
	for id := range t.nodes {
		if id != providerID && t.WithinScope(providerID, layer, id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
