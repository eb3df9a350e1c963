package main

import (
	"fmt"
	"os"

	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
	"github.com/azybler/osm2lanes/pkg/transform/lanestotags"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

type roundtripCmd struct {
	localeFlags

	Args struct {
		Input string `positional-arg-name:"TAGS" description:"Input tags file (YAML/JSON object of key:value), or - for stdin"`
	} `positional-args:"true"`
}

func filterSeparators(lanes []road.Lane) []road.Lane {
	out := make([]road.Lane, 0, len(lanes))
	for _, l := range lanes {
		if !l.IsSeparator() {
			out = append(out, l)
		}
	}
	return out
}

func sameLaneShape(a, b []road.Lane) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
		if a[i].Kind == road.KindTravel || a[i].Kind == road.KindParking {
			if a[i].Designated != b[i].Designated {
				return false
			}
			adir, bdir := a[i].Direction, b[i].Direction
			if (adir == nil) != (bdir == nil) {
				return false
			}
			if adir != nil && *adir != *bdir {
				return false
			}
		}
	}
	return true
}

// Execute runs tags->lanes, the reverse projection, and tags->lanes again,
// reporting whether the non-separator lane shape survived the round trip:
// lanes->tags may not reproduce the exact separator markings it started
// from, so separators are excluded from this comparison the same way the
// transform's own round-trip tests exclude them.
func (c *roundtripCmd) Execute(_ []string) error {
	data, err := readInput(c.Args.Input)
	if err != nil {
		return err
	}
	var t tags.Tags
	if err := decodeInto(data, &t); err != nil {
		return fmt.Errorf("parsing tags: %w", err)
	}

	loc, err := c.build()
	if err != nil {
		return err
	}

	firstRoad, _, err := tagstolanes.TagsToLanes(&t, loc, tagstolanes.Config{})
	if err != nil {
		return fmt.Errorf("tags->lanes: %w", err)
	}

	derivedTags, err := lanestotags.LanesToTags(firstRoad, loc, lanestotags.Config{CheckRoundtrip: false})
	if err != nil {
		return fmt.Errorf("lanes->tags: %w", err)
	}

	secondRoad, _, err := tagstolanes.TagsToLanes(derivedTags, loc, tagstolanes.Config{})
	if err != nil {
		return fmt.Errorf("re-running tags->lanes: %w", err)
	}

	want := filterSeparators(firstRoad.Lanes)
	got := filterSeparators(secondRoad.Lanes)
	if !sameLaneShape(want, got) {
		fmt.Fprintln(os.Stderr, "roundtrip drift detected")
		fmt.Fprintf(os.Stderr, "  original: %+v\n", want)
		fmt.Fprintf(os.Stderr, "  derived:  %+v\n", got)
		os.Exit(1)
	}
	fmt.Println("roundtrip stable")
	return nil
}
