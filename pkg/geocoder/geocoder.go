// Package geocoder answers "which country is this point in?" entirely
// offline, the external collaborator that resolves a locale when a way's
// tags carry coordinates but no ISO3166-2/driving_side context of their own.
package geocoder

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
)

// country is one entry of the built-in country footprint table: a rough
// bounding-box footprint, not a precise national boundary. See DESIGN.md:
// the pack ships no country-polygon dataset, so the footprints below are a
// coarse approximation sufficient to disambiguate the non-overlapping
// countries this transform's locale rules care about.
type country struct {
	alpha2       string
	drivesOnLeft bool
	footprint    orb.Polygon
}

func box(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	ring := orb.Ring{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}
	return orb.Polygon{ring}
}

var countries = []country{
	{alpha2: "GB", drivesOnLeft: true, footprint: box(-8.2, 49.8, 1.8, 60.9)},
	{alpha2: "IE", drivesOnLeft: true, footprint: box(-10.7, 51.4, -5.9, 55.4)},
	{alpha2: "AU", drivesOnLeft: true, footprint: box(112.9, -43.7, 153.6, -10.0)},
	{alpha2: "JP", drivesOnLeft: true, footprint: box(129.4, 30.9, 145.9, 45.6)},
	{alpha2: "DE", drivesOnLeft: false, footprint: box(5.9, 47.3, 15.0, 55.1)},
	{alpha2: "NL", drivesOnLeft: false, footprint: box(3.3, 50.7, 7.3, 53.6)},
	{alpha2: "FR", drivesOnLeft: false, footprint: box(-4.9, 41.3, 9.6, 51.1)},
	{alpha2: "PL", drivesOnLeft: false, footprint: box(14.1, 49.0, 24.2, 54.9)},
	{alpha2: "ES", drivesOnLeft: false, footprint: box(-9.4, 36.0, 3.4, 43.8)},
	{alpha2: "IT", drivesOnLeft: false, footprint: box(6.6, 36.6, 18.6, 47.1)},
	{alpha2: "BE", drivesOnLeft: false, footprint: box(2.5, 49.5, 6.4, 51.6)},
	{alpha2: "US", drivesOnLeft: false, footprint: box(-125.0, 24.4, -66.9, 49.4)},
	{alpha2: "CA", drivesOnLeft: false, footprint: box(-141.0, 41.7, -52.6, 70.0)},
	{alpha2: "MX", drivesOnLeft: false, footprint: box(-118.4, 14.5, -86.7, 32.7)},
	{alpha2: "BR", drivesOnLeft: false, footprint: box(-73.9, -33.7, -34.8, 5.3)},
}

// Geocoder resolves a longitude/latitude point to a country, using an R-tree
// of country bounding boxes to cut down candidates before the exact
// point-in-polygon test.
type Geocoder struct {
	index rtree.RTreeG[*country]
}

// New builds the geocoder from the built-in country footprint table.
func New() *Geocoder {
	g := &Geocoder{}
	for i := range countries {
		c := &countries[i]
		min, max := bounds(c.footprint)
		g.index.Insert(min, max, c)
	}
	return g
}

func bounds(poly orb.Polygon) (min, max [2]float64) {
	min = [2]float64{poly[0][0][0], poly[0][0][1]}
	max = min
	for _, pt := range poly[0] {
		if pt[0] < min[0] {
			min[0] = pt[0]
		}
		if pt[1] < min[1] {
			min[1] = pt[1]
		}
		if pt[0] > max[0] {
			max[0] = pt[0]
		}
		if pt[1] > max[1] {
			max[1] = pt[1]
		}
	}
	return min, max
}

func (g *Geocoder) lookup(lon, lat float64) (*country, bool) {
	pt := orb.Point{lon, lat}
	var found *country
	g.index.Search([2]float64{lon, lat}, [2]float64{lon, lat}, func(_, _ [2]float64, c *country) bool {
		if planar.PolygonContains(c.footprint, pt) {
			found = c
			return false // stop at the first match
		}
		return true
	})
	return found, found != nil
}

// ISOA2 returns the two-letter ISO-3166-1 country code containing (lon,
// lat), or false if the point falls outside every known footprint.
func (g *Geocoder) ISOA2(lon, lat float64) (string, bool) {
	c, ok := g.lookup(lon, lat)
	if !ok {
		return "", false
	}
	return c.alpha2, true
}

// DrivesOnLeft returns whether the country containing (lon, lat) drives on
// the left, or false/false if the point is outside every known footprint.
func (g *Geocoder) DrivesOnLeft(lon, lat float64) (bool, bool) {
	c, ok := g.lookup(lon, lat)
	if !ok {
		return false, false
	}
	return c.drivesOnLeft, true
}
