package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration. Every field is a pointer so
// the loader can tell "absent" from "zero"; absent fields keep their
// command-line (or default) values.
//
// Example:
//
//	max_m: 500
//	min_m: 1
//	max_primes_per_range: 50000
//	workers: 8
//	scale_workers: 4
//	seed: 42
type fileConfig struct {
	MaxM      *uint64 `yaml:"max_m"`
	MinM      *uint64 `yaml:"min_m"`
	MaxPrimes *int    `yaml:"max_primes_per_range"`
	Workers   *int    `yaml:"workers"`
	ScaleW    *int    `yaml:"scale_workers"`
	Seed      *int64  `yaml:"seed"`
}

// loadConfig parses the YAML file at path. Unknown keys are rejected so a
// typo in a field name fails loudly instead of silently running defaults.
func loadConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// apply folds file values into the run parameters. Precedence: command line
// beats file beats defaults — a positional argument or changed flag always
// wins over the file.
func (c *fileConfig) apply(p *runParams, flags *pflag.FlagSet) {
	if c.MaxM != nil && !p.maxMSet {
		p.maxM = *c.MaxM
	}
	if c.MinM != nil && !p.minMSet {
		p.minM = *c.MinM
	}
	if c.MaxPrimes != nil && !p.maxPrimesSet {
		p.maxPrimes = *c.MaxPrimes
	}
	if c.Workers != nil && !flags.Changed("workers") {
		p.workers = *c.Workers
	}
	if c.ScaleW != nil && !flags.Changed("scale-workers") {
		p.scaleWorkers = *c.ScaleW
	}
	if c.Seed != nil && !flags.Changed("seed") {
		p.seed = *c.Seed
	}
}
