package service

import (
	"context"

	"github.com/google/uuid"
)

// OrderBroadcaster pushes order snapshots to live store dashboards. Delivery is
// best-effort: Broadcast never fails and never blocks on a slow connection.
type OrderBroadcaster interface {
	Broadcast(ctx context.Context, storeID uuid.UUID, payload any)
}
