package order

import (
	"time"

	"github.com/minicrm/crm-backend/internal/domain"
)

// The functions below compute the post-mutation customer aggregates for each
// kind of ledger change. They are pure: callers load the current aggregates
// under the customer row lock, apply one of these, and persist the result in
// the same transaction.

// statsAfterCreate applies a new order to the aggregates.
// last_order_date only moves forward: backdated orders never displace a
// later existing order.
func statsAfterCreate(cur domain.CustomerStats, value float64, date time.Time) domain.CustomerStats {
	next := domain.CustomerStats{
		TotalSpend:  cur.TotalSpend + value,
		TotalOrders: cur.TotalOrders + 1,
	}
	if cur.LastOrderDate == nil || date.After(*cur.LastOrderDate) {
		d := date
		next.LastOrderDate = &d
	} else {
		next.LastOrderDate = cur.LastOrderDate
	}
	return next
}

// statsAfterUpdate applies an order amendment. The spend delta is
// new_value - old_value; the order count is unchanged. maxDate is the
// recomputed MAX(order_date) over the customer's orders after the update:
// a date change may demote the amended order or promote another one, so
// the latest date is re-derived rather than compared.
func statsAfterUpdate(cur domain.CustomerStats, oldValue, newValue float64, maxDate *time.Time) (domain.CustomerStats, bool) {
	next := domain.CustomerStats{
		TotalSpend:    cur.TotalSpend + (newValue - oldValue),
		TotalOrders:   cur.TotalOrders,
		LastOrderDate: maxDate,
	}
	return clamp(next)
}

// statsAfterDelete removes an order from the aggregates. remainingMax is the
// recomputed MAX(order_date) over the customer's remaining orders (nil when
// none remain).
func statsAfterDelete(cur domain.CustomerStats, value float64, remainingMax *time.Time) (domain.CustomerStats, bool) {
	next := domain.CustomerStats{
		TotalSpend:    cur.TotalSpend - value,
		TotalOrders:   cur.TotalOrders - 1,
		LastOrderDate: remainingMax,
	}
	return clamp(next)
}

// clamp floors negative aggregates at zero and clears the order date when no
// orders remain. A true second return value means the inputs were already
// inconsistent (e.g. a double-delete race); callers must surface that in
// telemetry rather than swallow it.
func clamp(s domain.CustomerStats) (domain.CustomerStats, bool) {
	clamped := false
	if s.TotalOrders < 0 {
		s.TotalOrders = 0
		clamped = true
	}
	if s.TotalSpend < 0 {
		s.TotalSpend = 0
		clamped = true
	}
	if s.TotalOrders == 0 && s.TotalSpend != 0 {
		// Residual spend with no orders means the row was already skewed.
		s.TotalSpend = 0
		clamped = true
	}
	if s.TotalOrders == 0 && s.LastOrderDate != nil {
		// A stale row may still report a date; zero orders means no date.
		s.LastOrderDate = nil
		clamped = true
	}
	return s, clamped
}
