// Package overpass fetches way tags, geometry, and enclosing-area locale
// context from the Overpass API, the external collaborator that feeds real
// OSM data into tags→lanes.
package overpass

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
	"github.com/paulmach/osm"

	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/tags"
)

const defaultBaseURL = "https://overpass-api.de/api/interpreter"

// DefaultRadiusMetres is how far FetchNearby searches around a point.
const DefaultRadiusMetres = 10.0

// LatLon is one point of a way's geometry, as returned by Overpass's
// "out geom" clause.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Client queries an Overpass API endpoint over HTTP.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a Client pointed at the public Overpass instance.
func NewClient() *Client {
	return &Client{HTTP: http.DefaultClient, BaseURL: defaultBaseURL}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

type elementType string

const (
	elementNode elementType = "node"
	elementWay  elementType = "way"
	elementArea elementType = "area"
)

// element is one member of an Overpass response, decoded loosely: tags are
// read as a raw key/value pair list rather than a Go map, because Overpass
// occasionally emits duplicate tag keys that a map would silently collapse.
type element struct {
	Type     elementType `json:"type"`
	ID       int64       `json:"id"`
	TagPairs [][2]string `json:"-"`
	Geometry []LatLon    `json:"geometry"`
}

func (e *element) UnmarshalJSON(data []byte) error {
	type alias struct {
		Type     elementType     `json:"type"`
		ID       int64           `json:"id"`
		Tags     json.RawMessage `json:"tags"`
		Geometry []LatLon        `json:"geometry"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	e.Type, e.ID, e.Geometry = a.Type, a.ID, a.Geometry
	pairs, err := decodeTagPairs(a.Tags)
	if err != nil {
		return err
	}
	e.TagPairs = pairs
	return nil
}

// decodeTagPairs walks a JSON object token-by-token to preserve duplicate
// keys instead of decoding into a map, which would silently keep only the
// last value for a repeated key.
func decodeTagPairs(raw json.RawMessage) ([][2]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening '{'
		return nil, err
	}
	var pairs [][2]string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("overpass: tag key is not a string: %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("overpass: tag value is not a string: %v", valTok)
		}
		pairs = append(pairs, [2]string{key, val})
	}
	return pairs, nil
}

func (e element) tags() *tags.Tags {
	return tags.FromPairsLoose(e.TagPairs)
}

func (e element) find(key string) (string, bool) {
	for _, p := range e.TagPairs {
		if p[0] == key {
			return p[1], true
		}
	}
	return "", false
}

type overpassResult struct {
	Elements []element `json:"elements"`
}

func (r overpassResult) findTag(key string) (string, bool) {
	for _, e := range r.Elements {
		if v, ok := e.find(key); ok {
			return v, true
		}
	}
	return "", false
}

// locale resolves driving side and country from whatever enclosing-area tags
// the query surfaced, defaulting to right-hand traffic and no country when
// none were found.
func (r overpassResult) locale() (*locale.Locale, error) {
	b := locale.NewBuilder()
	if iso2, ok := r.findTag("ISO3166-2"); ok {
		b = b.ISO3166(iso2)
	} else if iso1, ok := r.findTag("ISO3166-1"); ok {
		b = b.ISO3166(iso1)
	}
	if ds, ok := r.findTag("driving_side"); ok {
		if side, ok := locale.ParseDrivingSide(ds); ok {
			b = b.DrivingSide(side)
		}
	}
	return b.Build()
}

func wayQuery(id osm.WayID) string {
	return fmt.Sprintf(`[out:json][timeout:25];
way(id:%d);
out tags geom;
>;
is_in->.enclosing;
(
  area.enclosing["ISO3166-2"];
  area.enclosing["ISO3166-1"];
  area.enclosing["driving_side"];
);
out tags;`, id)
}

func nearbyQuery(lat, lon, radiusMetres float64) string {
	return fmt.Sprintf(`[out:json][timeout:25];
way(around:%g,%g,%g)["highway"];
out tags geom;
>;
is_in->.enclosing;
(
  area.enclosing["ISO3166-2"];
  area.enclosing["ISO3166-1"];
  area.enclosing["driving_side"];
);
out tags;`, radiusMetres, lat, lon)
}

func (c *Client) run(ctx context.Context, query string) (overpassResult, error) {
	u := c.baseURL() + "?data=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return overpassResult{}, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return overpassResult{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return overpassResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return overpassResult{}, fmt.Errorf("overpass: unexpected status %s: %s", resp.Status, body)
	}
	var result overpassResult
	if err := json.Unmarshal(body, &result); err != nil {
		return overpassResult{}, err
	}
	return result, nil
}

func findWay(result overpassResult, id osm.WayID) (element, bool) {
	for _, e := range result.Elements {
		if e.Type == elementWay && e.ID == int64(id) {
			return e, true
		}
	}
	return element{}, false
}

func firstGeometryWay(result overpassResult) (element, bool) {
	for _, e := range result.Elements {
		if e.Type == elementWay && e.Geometry != nil {
			return e, true
		}
	}
	return element{}, false
}

func countGeometryWays(result overpassResult) int {
	n := 0
	for _, e := range result.Elements {
		if e.Type == elementWay && e.Geometry != nil {
			n++
		}
	}
	return n
}

// FetchTags retrieves just the tags of a single way, without geometry or
// locale context.
func (c *Client) FetchTags(ctx context.Context, id osm.WayID) (*tags.Tags, error) {
	result, err := c.run(ctx, fmt.Sprintf(`[out:json][timeout:2];way(id:%d);out tags;`, id))
	if err != nil {
		return nil, err
	}
	e, ok := findWay(result, id)
	if !ok {
		return nil, fmt.Errorf("overpass: way %d not found in response", id)
	}
	return e.tags(), nil
}

// FetchWay retrieves tags, geometry, and the locale inferred from enclosing
// ISO3166/driving_side areas for a single way.
func (c *Client) FetchWay(ctx context.Context, id osm.WayID) (*tags.Tags, []LatLon, *locale.Locale, error) {
	result, err := c.run(ctx, wayQuery(id))
	if err != nil {
		return nil, nil, nil, err
	}
	e, ok := findWay(result, id)
	if !ok {
		return nil, nil, nil, fmt.Errorf("overpass: way %d not found in response", id)
	}
	if e.Geometry == nil {
		return nil, nil, nil, fmt.Errorf("overpass: way %d response missing geometry", id)
	}
	loc, err := result.locale()
	if err != nil {
		return nil, nil, nil, err
	}
	return e.tags(), e.Geometry, loc, nil
}

// FetchNearby finds a way with a highway=* tag within radiusMetres of
// (lat, lon) and returns its id, tags, geometry, and inferred locale. If more
// than one candidate way is found, one is chosen arbitrarily and a warning is
// logged.
func (c *Client) FetchNearby(ctx context.Context, lat, lon, radiusMetres float64) (osm.WayID, *tags.Tags, []LatLon, *locale.Locale, error) {
	result, err := c.run(ctx, nearbyQuery(lat, lon, radiusMetres))
	if err != nil {
		return 0, nil, nil, nil, err
	}
	if n := countGeometryWays(result); n > 1 {
		log.Printf("overpass: %d nearby ways found, returning one at random", n)
	}
	e, ok := firstGeometryWay(result)
	if !ok {
		return 0, nil, nil, nil, fmt.Errorf("overpass: no nearby way found within %gm", radiusMetres)
	}
	loc, err := result.locale()
	if err != nil {
		return 0, nil, nil, nil, err
	}
	return osm.WayID(e.ID), e.tags(), e.Geometry, loc, nil
}
