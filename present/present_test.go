package present

import (
	"encoding/json"
	"errors"
	"testing"

	"campus-nav/algo"
	"campus-nav/model"
	"campus-nav/registry"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New([]model.Location{
		{Name: "A", Lat: 0, Lng: 0, Category: model.CategoryEntrance},
		{Name: "B", Lat: 0, Lng: 1, Category: model.CategoryAcademic},
		{Name: "C", Lat: 1, Lng: 0, Category: model.CategoryFacility},
	})
	require.NoError(t, err)
	return r
}

func TestCoordinates(t *testing.T) {
	r := testRegistry(t)
	route := algo.Route{Path: []string{"A", "C", "B"}}

	points, err := Coordinates(route, r)
	require.NoError(t, err)
	assert.Equal(t, []model.Point{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}, {Lat: 0, Lng: 1}}, points)

	_, err = Coordinates(algo.Route{Path: []string{"A", "Z"}}, r)
	var notFound *algo.LocationNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestDirections(t *testing.T) {
	assert.Equal(t, "Route from A to B: A → C → B", Directions(algo.Route{Path: []string{"A", "C", "B"}}))
	assert.Equal(t, "Route from A to A: A", Directions(algo.Route{Path: []string{"A"}}))
	assert.Empty(t, Directions(algo.Route{}))
}

func TestGeoJSON(t *testing.T) {
	r := testRegistry(t)
	route := algo.Route{Path: []string{"A", "B"}, Distance: 111319.49}

	fc, err := GeoJSON(route, r)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}}, line)
	assert.Equal(t, 111319.49, fc.Features[0].Properties["distance"])
	assert.Equal(t, "B", fc.Features[2].Properties["name"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"LineString"`)

	// 单点路线只有点
	fc, err = GeoJSON(algo.Route{Path: []string{"C"}}, r)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, orb.Point{0, 1}, fc.Features[0].Geometry)
}

func TestMediaTable(t *testing.T) {
	entries := []model.RouteMedia{
		{From: "Main Gate", To: "Library", Resource: "videos/main_to_library.mp4"},
		{From: "Library", To: "Canteen", Resource: "https://cdn.example.com/library_to_canteen.mp4"},
		{From: "Library", To: "Main Gate", Resource: "videos/duplicate.mp4"},
	}

	table, err := NewMediaTable(entries, "https://campus.example.com/media")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	forward, ok := table.Lookup("Main Gate", "Library")
	require.True(t, ok)
	backward, ok := table.Lookup("Library", "Main Gate")
	require.True(t, ok)
	assert.Equal(t, forward, backward)
	assert.Equal(t, "https://campus.example.com/media/videos/main_to_library.mp4", forward)

	abs, _ := table.Lookup("Canteen", "Library")
	assert.Equal(t, "https://cdn.example.com/library_to_canteen.mp4", abs)

	_, ok = table.Lookup("Main Gate", "Canteen")
	assert.False(t, ok)
}

func TestMediaTable_RelativeBase(t *testing.T) {
	table, err := NewMediaTable([]model.RouteMedia{{From: "A", To: "B", Resource: "videos/a_b.mp4"}}, "/media/")
	require.NoError(t, err)
	got, _ := table.Lookup("B", "A")
	assert.Equal(t, "/media/videos/a_b.mp4", got)

	table, err = NewMediaTable([]model.RouteMedia{{From: "A", To: "B", Resource: "videos/a_b.mp4"}}, "")
	require.NoError(t, err)
	got, _ = table.Lookup("A", "B")
	assert.Equal(t, "videos/a_b.mp4", got)

	var nilTable *MediaTable
	_, ok := nilTable.Lookup("A", "B")
	assert.False(t, ok)
}

func TestNewMapView(t *testing.T) {
	r := testRegistry(t)
	view := NewMapView(r.All())

	assert.InDelta(t, 1.0/3, view.Center.Lat, 1e-9)
	assert.InDelta(t, 1.0/3, view.Center.Lng, 1e-9)
	assert.Equal(t, DefaultZoom, view.Zoom)
	assert.Len(t, view.Markers, 3)
	assert.Equal(t, model.Point{Lat: 0, Lng: 0}, view.Bounds[0])
	assert.Equal(t, model.Point{Lat: 1, Lng: 1}, view.Bounds[1])

	empty := NewMapView(nil)
	assert.Empty(t, empty.Markers)
}
