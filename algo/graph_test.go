package algo

import (
	"testing"

	"campus-nav/data"
	"campus-nav/model"
	"campus-nav/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() []model.Location {
	return []model.Location{
		{Name: "A", Lat: 0, Lng: 0, Category: model.CategoryEntrance},
		{Name: "B", Lat: 0, Lng: 1, Category: model.CategoryAcademic},
		{Name: "C", Lat: 1, Lng: 0, Category: model.CategoryFacility},
	}
}

func campus(t *testing.T) []model.Location {
	t.Helper()
	d, err := registry.Decode(data.CampusJSON, registry.FormatJSON)
	require.NoError(t, err)
	r, err := registry.FromMapData(d)
	require.NoError(t, err)
	return r.All()
}

func TestBuild_Triangle(t *testing.T) {
	g := Build(triangle())

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.Names())

	ab, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.InEpsilon(t, 111195.0, ab, 0.002)

	ba, _ := g.Weight("B", "A")
	assert.Equal(t, ab, ba)
}

func TestBuild_CampusIsComplete(t *testing.T) {
	locs := campus(t)
	g := Build(locs)

	n := len(locs)
	require.Equal(t, 7, n)
	assert.Equal(t, n, g.NodeCount())
	assert.Equal(t, n*(n-1)/2, g.EdgeCount())

	for _, a := range locs {
		assert.Len(t, g.GetNeighbors(a.Name), n-1)
		for _, b := range locs {
			if a.Name == b.Name {
				continue
			}
			w, ok := g.Weight(a.Name, b.Name)
			require.True(t, ok, "%s-%s", a.Name, b.Name)
			assert.Greater(t, w, 0.0)
			back, _ := g.Weight(b.Name, a.Name)
			assert.Equal(t, w, back)
		}
	}
}

func TestBuild_Trivial(t *testing.T) {
	g := Build(nil)
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())

	g = Build(triangle()[:1])
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_SharedCoordinates(t *testing.T) {
	locs := triangle()
	locs[1].Lat, locs[1].Lng = 0, 0

	g := Build(locs)
	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Zero(t, w)
}

func TestNode(t *testing.T) {
	g := Build(triangle())
	loc, ok := g.Node("C")
	require.True(t, ok)
	assert.Equal(t, model.CategoryFacility, loc.Category)

	_, ok = g.Node("D")
	assert.False(t, ok)
}

func TestFindNearestNode(t *testing.T) {
	g := Build(triangle())

	loc, ok := g.FindNearestNode(0.9, 0.1)
	require.True(t, ok)
	assert.Equal(t, "C", loc.Name)

	_, ok = Build(nil).FindNearestNode(0, 0)
	assert.False(t, ok)
}
