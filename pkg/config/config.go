// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config defines the run configuration consumed by the pipeline and
// the file formats it can be loaded from.
package config

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎚️ Formality selects which lexical substitution table applies
type Formality string

const (
	FormalityFormal    Formality = "formal"
	FormalityTechnical Formality = "technical"
	FormalityCasual    Formality = "casual"
)

// 📚 Config is the immutable input to one pipeline run
type Config struct {
	Intensity               float64   `yaml:"intensity" hcl:"intensity,optional" validate:"gte=0,lte=1"`
	EnableUnicode           bool      `yaml:"enable_unicode" hcl:"enable_unicode,optional"`
	EnableSyntax            bool      `yaml:"enable_syntax" hcl:"enable_syntax,optional"`
	EnableSemantics         bool      `yaml:"enable_semantics" hcl:"enable_semantics,optional"`
	Formality               Formality `yaml:"formality" hcl:"formality,optional" validate:"oneof=formal technical casual"`
	SimilarityThreshold     float64   `yaml:"similarity_threshold" hcl:"similarity_threshold,optional" validate:"gte=0,lte=1"`
	ReadabilityTolerancePct float64   `yaml:"readability_tolerance_pct" hcl:"readability_tolerance_pct,optional" validate:"gte=0"`

	// Seed makes space and synonym selection reproducible. Nil means a
	// fresh time-based seed per run.
	Seed *int64 `yaml:"seed,omitempty" hcl:"seed,optional"`

	// Batch configures file-mode processing; ignored by single-text runs.
	Batch *BatchArgs `yaml:"batch,omitempty" hcl:"-"`
}

// 📦 BatchArgs configures batch file processing
type BatchArgs struct {
	Inputs    []string `yaml:"inputs"`               // doublestar globs selecting input files
	Ignore    []string `yaml:"ignore,omitempty"`     // globs excluded from inputs
	OutputDir string   `yaml:"output_dir,omitempty"` // empty = alongside inputs
	Workers   int      `yaml:"workers,omitempty"`    // 0 = runtime default
}

// 🏭 Default returns the default configuration
func Default() Config {
	return Config{
		Intensity:               0.5,
		EnableUnicode:           true,
		EnableSyntax:            true,
		EnableSemantics:         true,
		Formality:               FormalityFormal,
		SimilarityThreshold:     0.85,
		ReadabilityTolerancePct: 5.0,
	}
}

var validate = validator.New()

// ✅ Validate checks all field ranges. Out-of-range values must fail here,
// before any stage runs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Errorf("validating config: %w", err)
	}
	if c.Batch != nil && c.Batch.Workers < 0 {
		return errors.Errorf("validating config: batch workers must be >= 0")
	}
	return nil
}

// 🔌 Parser is the interface for config file parsers
type Parser interface {
	// Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var parsers []Parser

// Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load loads and validates a configuration file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
