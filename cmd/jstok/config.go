package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jslex/parse/js"
)

// fileConfig is the jstok.toml project configuration supplying scan option
// defaults. Flags given on the command line take precedence.
type fileConfig struct {
	Module    bool `toml:"module"`
	Strict    bool `toml:"strict"`
	Next      bool `toml:"next"`
	Raw       bool `toml:"raw"`
	WebCompat bool `toml:"webcompat"`
}

const configFile = "jstok.toml"

// loadOptions layers the working directory's jstok.toml, when present, over
// the default scan options.
func loadOptions() (js.Options, error) {
	opts := js.DefaultOptions()
	if _, err := os.Stat(configFile); err != nil {
		return opts, nil
	}
	cfg := fileConfig{WebCompat: true}
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return opts, err
	}
	opts.Module = cfg.Module
	opts.Strict = cfg.Strict
	opts.Next = cfg.Next
	opts.Raw = cfg.Raw
	opts.WebCompat = cfg.WebCompat
	return opts, nil
}
