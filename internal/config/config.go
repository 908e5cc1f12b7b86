// Package config loads equity scenarios from HCL files, so recurring
// matchups can be described once and rerun.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Scenario describes a complete simulation request:
//
//	board  = "3c6dAs"
//	trials = 200000
//
//	player "hero" {
//	  range = "AsAh"
//	}
//
//	player "villain" {
//	  range = "QQ+,AKs"
//	}
type Scenario struct {
	Board   string         `hcl:"board,optional"`
	Trials  int            `hcl:"trials,optional"`
	Seed    *int64         `hcl:"seed,optional"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig declares one player's range notation.
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Range string `hcl:"range"`
}

// DefaultTrials is used when a scenario does not set a trial count.
const DefaultTrials = 100000

// Load parses a scenario from an HCL file.
func Load(filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file: %s", diags.Error())
	}

	var scenario Scenario
	diags = gohcl.DecodeBody(file.Body, nil, &scenario)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario: %s", diags.Error())
	}

	if scenario.Trials == 0 {
		scenario.Trials = DefaultTrials
	}
	if len(scenario.Players) < 1 {
		return nil, fmt.Errorf("scenario needs at least one player block")
	}
	return &scenario, nil
}
