package db

import "loadgo/internal/admin-service/core/guard"

// Guard descriptors for the three entities. Deletion is refused, not
// cascaded: an account goes only when no trip references it, a trip only
// when no payment does. Payments are leaves and need no dependency rules.
//
// The delete statements repeat the dependency condition as NOT EXISTS so a
// dependent row committed after the check still blocks the delete.

var AccountDescriptor = guard.Descriptor{
	Kind:        "account",
	ExistsQuery: `SELECT COUNT(*) FROM accounts WHERE id = $1`,
	DeleteQuery: `
		DELETE FROM accounts
		WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM trips WHERE customer_id = $1 OR driver_id = $1)`,
	Dependencies: []guard.DependencyRule{
		{
			Relationship: "associated orders",
			CountQuery:   `SELECT COUNT(*) FROM trips WHERE customer_id = $1 OR driver_id = $1`,
		},
		{
			// Payments hang off trips, so attribution goes through the join.
			Relationship: "associated payments",
			CountQuery: `
				SELECT COUNT(*)
				FROM payments p
				JOIN trips t ON p.order_id = t.id
				WHERE t.customer_id = $1 OR t.driver_id = $1`,
		},
	},
}

var TripDescriptor = guard.Descriptor{
	Kind:        "trip",
	ExistsQuery: `SELECT COUNT(*) FROM trips WHERE id = $1`,
	DeleteQuery: `
		DELETE FROM trips
		WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM payments WHERE order_id = $1)`,
	Dependencies: []guard.DependencyRule{
		{
			Relationship: "associated payments",
			CountQuery:   `SELECT COUNT(*) FROM payments WHERE order_id = $1`,
		},
	},
}

var PaymentDescriptor = guard.Descriptor{
	Kind:        "payment",
	ExistsQuery: `SELECT COUNT(*) FROM payments WHERE id = $1`,
	DeleteQuery: `DELETE FROM payments WHERE id = $1`,
}
