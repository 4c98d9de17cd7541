package service

import (
	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/samber/lo"
)

// Reconcile collapses multiple historical order records for one vehicle
// into the single most-current one. A listing query may legitimately
// return several attempts for the same vehicle when an earlier one was
// abandoned or superseded.
//
// Pure fold: the input records are never mutated. Output preserves the
// first-appearance order of each vehicle group.
func Reconcile(orders []*domain.Order) []*domain.Order {
	if len(orders) < 2 {
		return orders
	}

	groups := lo.GroupBy(orders, func(o *domain.Order) domain.VehicleKey {
		return domain.ResolveVehicleKey(o)
	})

	result := make([]*domain.Order, 0, len(groups))
	seen := make(map[domain.VehicleKey]bool, len(groups))
	for _, o := range orders {
		key := domain.ResolveVehicleKey(o)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, lo.MaxBy(groups[key], moreCurrent))
	}

	return result
}

// moreCurrent reports whether a supersedes b: the later record wins, and
// an exact timestamp tie is broken by the fixed status priority.
func moreCurrent(a, b *domain.Order) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Status().Priority() > b.Status().Priority()
}
