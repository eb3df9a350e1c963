package geocoder

import "testing"

func TestISOA2(t *testing.T) {
	g := New()
	cases := []struct {
		name             string
		lon, lat         float64
		wantISO          string
		wantDrivesOnLeft bool
	}{
		{"Hereford", -2.70, 52.06, "GB", true},
		{"Miami", -80.19, 25.76, "US", false},
		{"Wroclaw", 17.04, 51.11, "PL", false},
	}
	for _, c := range cases {
		iso, ok := g.ISOA2(c.lon, c.lat)
		if !ok || iso != c.wantISO {
			t.Fatalf("%s: ISOA2 = %q, %v; want %q", c.name, iso, ok, c.wantISO)
		}
		left, ok := g.DrivesOnLeft(c.lon, c.lat)
		if !ok || left != c.wantDrivesOnLeft {
			t.Fatalf("%s: DrivesOnLeft = %v, %v; want %v", c.name, left, ok, c.wantDrivesOnLeft)
		}
	}
}

func TestLookupMissOverOpenOcean(t *testing.T) {
	g := New()
	if _, ok := g.ISOA2(-40, 40); ok {
		t.Fatalf("expected no country match over open ocean")
	}
}
