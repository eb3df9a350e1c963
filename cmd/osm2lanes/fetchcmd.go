package main

import (
	"context"
	"fmt"

	"github.com/paulmach/osm"

	"github.com/azybler/osm2lanes/pkg/overpass"
	"github.com/azybler/osm2lanes/pkg/tags"
)

type fetchCmd struct {
	Format string  `short:"f" long:"format" default:"yaml" description:"Output format: yaml or json"`
	WayID  int64   `long:"way" description:"Fetch by OSM way id"`
	Lat    float64 `long:"lat" description:"Fetch the nearest tagged way to this latitude"`
	Lon    float64 `long:"lon" description:"Fetch the nearest tagged way to this longitude"`
	Radius float64 `long:"radius" default:"10" description:"Search radius in metres for --lat/--lon"`
}

type fetchResult struct {
	WayID       int64             `json:"way_id"`
	Tags        map[string]string `json:"tags"`
	DrivingSide string            `json:"driving_side"`
	Country     *string           `json:"country,omitempty"`
	Geometry    []overpass.LatLon `json:"geometry"`
}

// Execute fetches a way's tags, geometry, and inferred locale from Overpass,
// either by id or by nearest-way search around a point.
func (c *fetchCmd) Execute(_ []string) error {
	client := overpass.NewClient()
	ctx := context.Background()

	var (
		id   osm.WayID
		t    *tags.Tags
		geom []overpass.LatLon
		side string
		iso  *string
	)

	switch {
	case c.WayID != 0:
		tg, g, loc, err := client.FetchWay(ctx, osm.WayID(c.WayID))
		if err != nil {
			return err
		}
		id, t, geom = osm.WayID(c.WayID), tg, g
		side = loc.DrivingSide.String()
		if loc.Country != nil {
			a := loc.Country.Alpha2
			iso = &a
		}
	case c.Lat != 0 || c.Lon != 0:
		wid, tg, g, loc, err := client.FetchNearby(ctx, c.Lat, c.Lon, c.Radius)
		if err != nil {
			return err
		}
		id, t, geom = wid, tg, g
		side = loc.DrivingSide.String()
		if loc.Country != nil {
			a := loc.Country.Alpha2
			iso = &a
		}
	default:
		return fmt.Errorf("specify --way or --lat/--lon")
	}

	m := make(map[string]string)
	for _, p := range t.Pairs() {
		m[p[0]] = p[1]
	}
	result := fetchResult{WayID: int64(id), Tags: m, DrivingSide: side, Country: iso, Geometry: geom}

	out, err := encodeAs(result, c.Format)
	if err != nil {
		return err
	}
	return writeOutput("-", out)
}
