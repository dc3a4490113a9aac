package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of TL.REPL. Command line flags override values
// read from a config file.
type Config struct {
	Trace   string `toml:"trace"`   // trace level [Debug|Info|Error]
	Tree    bool   `toml:"tree"`    // print parse trees
	Prompt  string `toml:"prompt"`  // input prompt
	History string `toml:"history"` // readline history file, empty for none
}

func defaultConfig() Config {
	return Config{
		Trace:  "Info",
		Tree:   true,
		Prompt: "tl> ",
	}
}

// loadConfig reads a TOML config file. Keys missing in the file keep their
// default values. An empty filename yields the defaults.
func loadConfig(filename string) (Config, error) {
	conf := defaultConfig()
	if filename == "" {
		return conf, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	conf := defaultConfig()
	md, err := toml.Decode(string(data), &conf)
	if err != nil {
		return defaultConfig(), fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return defaultConfig(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return conf, nil
}
