package main

import (
	"fmt"

	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/transform/lanestotags"
)

type lanesToTagsCmd struct {
	localeFlags

	Format         string `short:"f" long:"format" default:"yaml" description:"Output format: yaml or json"`
	CheckRoundtrip bool   `long:"check-roundtrip" description:"Fail if re-running tags->lanes on the result doesn't reproduce the input"`

	Args struct {
		Input string `positional-arg-name:"ROAD" description:"Input road file (YAML/JSON, see pkg/road's JSON shape), or - for stdin"`
	} `positional-args:"true"`
}

// Execute reads a Road and prints the tags it projects onto.
func (c *lanesToTagsCmd) Execute(_ []string) error {
	data, err := readInput(c.Args.Input)
	if err != nil {
		return err
	}
	var r road.Road
	if err := decodeInto(data, &r); err != nil {
		return fmt.Errorf("parsing road: %w", err)
	}

	loc, err := c.build()
	if err != nil {
		return err
	}

	t, err := lanestotags.LanesToTags(&r, loc, lanestotags.Config{CheckRoundtrip: c.CheckRoundtrip})
	if err != nil {
		return err
	}

	out, err := encodeAs(t, c.Format)
	if err != nil {
		return err
	}
	return writeOutput("-", out)
}
