package main

import (
	"errors"

	flag "github.com/spf13/pflag"
)

// runConfig prints the effective configuration as YAML: config file,
// environment and flags merged exactly as convert would merge them.
// Positional arguments are ignored so a convert command line can be
// checked by swapping the command name.
func runConfig(args []string, env *Environment) error {
	f, fs, _, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConfigUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	envCfg, err := loadEnvConfig(env.Environ())
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(f, fs, envCfg)
	if err != nil {
		return err
	}

	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
