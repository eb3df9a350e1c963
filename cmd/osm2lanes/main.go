// Command osm2lanes converts between OSM way tags and a left-to-right lane
// description, in either direction, from the command line.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type rootCmd struct {
	TagsToLanes tagsToLanesCmd `command:"tags-to-lanes" description:"Convert OSM way tags into a lane description"`
	LanesToTags lanesToTagsCmd `command:"lanes-to-tags" description:"Convert a lane description back into OSM way tags"`
	Roundtrip   roundtripCmd   `command:"roundtrip" description:"Run tags->lanes->tags->lanes and report any drift"`
	Fetch       fetchCmd       `command:"fetch" description:"Fetch a way's tags from Overpass"`
	Version     versionCmd     `command:"version" description:"Show version information"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

const version = "osm2lanes 0.1.0"

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	_, err := os.Stdout.WriteString(version + "\n")
	return err
}
