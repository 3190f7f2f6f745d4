package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halya-h/MovieMapUA/internal/domain/helper"
	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

var (
	kyiv = model.GeoPoint{Lat: 50.4501, Lng: 30.5234}
	lviv = model.GeoPoint{Lat: 49.8397, Lng: 24.0297}
)

func TestHaversineDistance_KnownPair(t *testing.T) {
	// Kyiv to Lviv is roughly 468 km as the crow flies.
	got := helper.HaversineDistance(kyiv, lviv)
	assert.InDelta(t, 468.0, got, 5.0)
}

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, helper.HaversineDistance(kyiv, kyiv), 1e-9)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	assert.InDelta(t, helper.HaversineDistance(kyiv, lviv), helper.HaversineDistance(lviv, kyiv), 1e-9)
}

func TestHaversineDistanceLocation(t *testing.T) {
	a := &model.Location{Coordinates: kyiv}
	b := &model.Location{Coordinates: lviv}
	assert.InDelta(t, helper.HaversineDistance(kyiv, lviv), helper.HaversineDistanceLocation(a, b), 1e-9)
}

func TestSortByReviewCount(t *testing.T) {
	hits := []model.SearchHit{
		{LocationID: "a", ReviewCount: 10},
		{LocationID: "b", ReviewCount: 50},
		{LocationID: "c", ReviewCount: 10},
		{LocationID: "d", ReviewCount: 0},
	}

	helper.SortByReviewCount(hits)

	assert.Equal(t, "b", hits[0].LocationID)
	// Stable sort keeps the original order of equal counts.
	assert.Equal(t, "a", hits[1].LocationID)
	assert.Equal(t, "c", hits[2].LocationID)
	assert.Equal(t, "d", hits[3].LocationID)
}
