package utils

import (
	"math"
	"testing"

	"campus-nav/model"

	"github.com/stretchr/testify/assert"
)

func TestGeodesicDistance(t *testing.T) {
	a := model.Point{Lat: 0, Lng: 0}
	b := model.Point{Lat: 0, Lng: 1}

	d := GeodesicDistance(a, b)
	// 赤道上 1 度经度约 111.2 km
	assert.InEpsilon(t, 111195.0, d, 0.002)
	assert.Equal(t, d, GeodesicDistance(b, a))
	assert.Zero(t, GeodesicDistance(a, a))
}

func TestCentroid(t *testing.T) {
	c := Centroid([]model.Point{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}})
	assert.InDelta(t, 2.0, c.Lat, 1e-9)
	assert.InDelta(t, 3.0, c.Lng, 1e-9)

	assert.Equal(t, model.Point{}, Centroid(nil))
}

func TestBounds(t *testing.T) {
	b := Bounds([]model.Point{{Lat: 23.5172, Lng: 77.8185}, {Lat: 23.5211, Lng: 77.8208}})
	assert.InDelta(t, 77.8185, b.Min.Lon(), 1e-9)
	assert.InDelta(t, 23.5172, b.Min.Lat(), 1e-9)
	assert.InDelta(t, 77.8208, b.Max.Lon(), 1e-9)
	assert.InDelta(t, 23.5211, b.Max.Lat(), 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(23.5, 77.8))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(1000, -5000))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}
