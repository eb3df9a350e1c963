package main

import (
	"fmt"
	"os"

	"github.com/azybler/osm2lanes/pkg/tags"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

type tagsToLanesCmd struct {
	localeFlags

	Format            string `short:"f" long:"format" default:"yaml" description:"Output format: yaml or json"`
	IncludeSeparators bool   `long:"separators" description:"Also infer and emit separator lanes"`
	ErrorOnWarnings   bool   `long:"error-on-warnings" description:"Fail instead of warning on recoverable tag issues"`

	Args struct {
		Input string `positional-arg-name:"TAGS" description:"Input tags file (YAML/JSON object of key:value), or - for stdin"`
	} `positional-args:"true"`
}

// Execute reads a way's tags and prints the Road they parse into.
func (c *tagsToLanesCmd) Execute(_ []string) error {
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

	r, warnings, err := tagstolanes.TagsToLanes(&t, loc, tagstolanes.Config{
		IncludeSeparators: c.IncludeSeparators,
		ErrorOnWarnings:   c.ErrorOnWarnings,
	})
	if err != nil {
		return err
	}
	for _, w := range warnings.Strings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	out, err := encodeAs(r, c.Format)
	if err != nil {
		return err
	}
	return writeOutput("-", out)
}
