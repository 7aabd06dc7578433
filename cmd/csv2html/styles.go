package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	flag "github.com/spf13/pflag"

	csv2html "github.com/alnah/go-csv2html"
)

// runStyles lists the style names --style accepts, one per line.
// --asset-path (or CSV2HTML_ASSET_PATH) adds custom styles to the list.
func runStyles(args []string, env *Environment) error {
	var assetPath string
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&assetPath, "asset-path", "", "directory of custom styles")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printStylesUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	if assetPath == "" {
		envCfg, err := loadEnvConfig(env.Environ())
		if err != nil {
			return err
		}
		assetPath = envCfg.AssetPath
	}

	loader, err := csv2html.NewStyleLoader(assetPath)
	if err != nil {
		return err
	}

	for _, name := range withDefaultStyle(loader.Styles()) {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

// withDefaultStyle adds the built-in style name and sorts.
func withDefaultStyle(names []string) []string {
	if !slices.Contains(names, csv2html.DefaultStyle) {
		names = append(names, csv2html.DefaultStyle)
	}
	slices.Sort(names)
	return names
}
