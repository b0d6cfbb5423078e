package domain

import "time"

// Segment is a named, predicate-defined subset of active customers.
// Segments are not stored; they are classifications computed on demand
// from the current customer aggregates. A customer may belong to several
// segments at once.
type Segment string

const (
	SegmentHighValue      Segment = "high_value_customers"
	SegmentRecentlyActive Segment = "recently_active"
	SegmentInactive       Segment = "inactive_customers"
	SegmentNew            Segment = "new_customers"
)

// AllSegments lists every segment in stable dashboard order.
func AllSegments() []Segment {
	return []Segment{
		SegmentHighValue,
		SegmentRecentlyActive,
		SegmentInactive,
		SegmentNew,
	}
}

// SegmentRules holds the tunable parameters of the segment predicates.
type SegmentRules struct {
	// HighValueThreshold is the total_spend above which a customer is
	// high-value (strictly greater than).
	HighValueThreshold float64
	// RecentWindow restricts the strict recently-active variant to
	// customers whose last order falls within this trailing window.
	RecentWindow time.Duration
}

// IsHighValue reports whether the customer's spend exceeds the threshold.
func (r SegmentRules) IsHighValue(s CustomerStats) bool {
	return s.TotalSpend > r.HighValueThreshold
}

// IsRecentlyActive reports whether the customer has any orders at all.
// This is the permissive variant used for dashboard counts.
func (r SegmentRules) IsRecentlyActive(s CustomerStats) bool {
	return s.TotalOrders > 0
}

// IsRecentlyActiveWithin reports whether the customer ordered within the
// trailing RecentWindow ending at now. This is the strict variant.
func (r SegmentRules) IsRecentlyActiveWithin(s CustomerStats, now time.Time) bool {
	if s.TotalOrders == 0 || s.LastOrderDate == nil {
		return false
	}
	return s.LastOrderDate.After(now.Add(-r.RecentWindow))
}

// IsInactive reports whether the customer has no orders.
func (r SegmentRules) IsInactive(s CustomerStats) bool {
	return s.TotalOrders == 0
}

// IsNew reports whether the customer has at most one order.
func (r SegmentRules) IsNew(s CustomerStats) bool {
	return s.TotalOrders <= 1
}

// Matches reports whether the stats satisfy the named segment's predicate.
func (r SegmentRules) Matches(seg Segment, s CustomerStats) bool {
	switch seg {
	case SegmentHighValue:
		return r.IsHighValue(s)
	case SegmentRecentlyActive:
		return r.IsRecentlyActive(s)
	case SegmentInactive:
		return r.IsInactive(s)
	case SegmentNew:
		return r.IsNew(s)
	}
	return false
}

// MatchesStrict is Matches with the strict recently-active predicate: the
// recently-active segment requires a last order inside the trailing
// RecentWindow ending at now. All other segments behave as in Matches.
func (r SegmentRules) MatchesStrict(seg Segment, s CustomerStats, now time.Time) bool {
	if seg == SegmentRecentlyActive {
		return r.IsRecentlyActiveWithin(s, now)
	}
	return r.Matches(seg, s)
}

// SegmentForAudience maps a campaign audience type to the segment whose
// predicate sizes it. AudienceAllCustomers (and, by normalization, any
// unrecognized type) has no segment: it counts every active customer.
func SegmentForAudience(t AudienceType) (Segment, bool) {
	switch t {
	case AudienceHighValue:
		return SegmentHighValue, true
	case AudienceInactive:
		return SegmentInactive, true
	case AudienceNew:
		return SegmentNew, true
	}
	return "", false
}
