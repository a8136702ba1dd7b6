package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig is the root structure of the optional config file:
//
//	[factorial]
//	prec = 80
//	threshold = 2000
type fileConfig struct {
	Factorial factorialConfig `toml:"factorial"`
}

type factorialConfig struct {
	Prec      int `toml:"prec"`
	Threshold int `toml:"threshold"`
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Factorial.Prec < 0 {
		return nil, fmt.Errorf("config %s: prec must be positive, got %d", path, cfg.Factorial.Prec)
	}
	if cfg.Factorial.Threshold < 0 {
		return nil, fmt.Errorf("config %s: threshold must be positive, got %d", path, cfg.Factorial.Threshold)
	}
	return &cfg, nil
}
