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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema. Pointer fields distinguish "absent" from zero so
	// defaults survive partial files.
	type hclConfig struct {
		Intensity               *float64 `hcl:"intensity,optional"`
		EnableUnicode           *bool    `hcl:"enable_unicode,optional"`
		EnableSyntax            *bool    `hcl:"enable_syntax,optional"`
		EnableSemantics         *bool    `hcl:"enable_semantics,optional"`
		Formality               *string  `hcl:"formality,optional"`
		SimilarityThreshold     *float64 `hcl:"similarity_threshold,optional"`
		ReadabilityTolerancePct *float64 `hcl:"readability_tolerance_pct,optional"`
		Seed                    *int64   `hcl:"seed,optional"`
		Batch                   *struct {
			Inputs    []string `hcl:"inputs"`
			Ignore    []string `hcl:"ignore,optional"`
			OutputDir string   `hcl:"output_dir,optional"`
			Workers   int      `hcl:"workers,optional"`
		} `hcl:"batch,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := Default()
	if hclCfg.Intensity != nil {
		cfg.Intensity = *hclCfg.Intensity
	}
	if hclCfg.EnableUnicode != nil {
		cfg.EnableUnicode = *hclCfg.EnableUnicode
	}
	if hclCfg.EnableSyntax != nil {
		cfg.EnableSyntax = *hclCfg.EnableSyntax
	}
	if hclCfg.EnableSemantics != nil {
		cfg.EnableSemantics = *hclCfg.EnableSemantics
	}
	if hclCfg.Formality != nil {
		cfg.Formality = Formality(*hclCfg.Formality)
	}
	if hclCfg.SimilarityThreshold != nil {
		cfg.SimilarityThreshold = *hclCfg.SimilarityThreshold
	}
	if hclCfg.ReadabilityTolerancePct != nil {
		cfg.ReadabilityTolerancePct = *hclCfg.ReadabilityTolerancePct
	}
	cfg.Seed = hclCfg.Seed

	if hclCfg.Batch != nil {
		cfg.Batch = &BatchArgs{
			Inputs:    hclCfg.Batch.Inputs,
			Ignore:    hclCfg.Batch.Ignore,
			OutputDir: hclCfg.Batch.OutputDir,
			Workers:   hclCfg.Batch.Workers,
		}
	}

	return &cfg, nil
}
