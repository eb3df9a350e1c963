package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/invopop/yaml"

	"github.com/azybler/osm2lanes/pkg/locale"
)

// localeFlags are the driving-side/ISO3166 options shared by every
// subcommand that needs a locale to interpret or emit tags under.
type localeFlags struct {
	DrivingSide string `long:"driving-side" choice:"right" choice:"left" default:"right" description:"Which side of the road traffic drives on"`
	ISO3166     string `long:"iso3166" description:"ISO 3166-1 alpha-2 or ISO 3166-2 code, e.g. DE or US-CA"`
}

func (f localeFlags) build() (*locale.Locale, error) {
	side, ok := locale.ParseDrivingSide(f.DrivingSide)
	if !ok {
		return nil, fmt.Errorf("unknown driving side %q", f.DrivingSide)
	}
	b := locale.NewBuilder().DrivingSide(side).ISO3166Option(f.ISO3166)
	return b.Build()
}

// readInput returns the contents of path, or reads stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeInto parses YAML or JSON data into v, auto-detecting by leaning on
// invopop/yaml, which accepts JSON as a strict subset of YAML.
func decodeInto(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// encodeAs renders v as YAML or JSON, the two output formats every
// subcommand supports.
func encodeAs(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml":
		return yaml.Marshal(v)
	case "json":
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
