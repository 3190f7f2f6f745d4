package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// DirectionsProvider computes a driving route through ordered waypoints.
// The engine only feeds it waypoints and consumes the summary; turn-by-turn
// path-finding stays inside the provider.
type DirectionsProvider interface {
	GetDrivingRoute(ctx context.Context, waypoints []model.GeoPoint) (*model.RouteSummary, error)
}
