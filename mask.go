package main

import (
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
)

// MaskRule replaces every match of the pattern in each configured column with
// the surrogate string. It does not parse the field as a date, so it can
// blank out columns the date rules cannot handle.
type MaskRule struct {
	Columns       []int  `cty:"columns"`
	Surrogate     string `cty:"surrogate"`
	PatternString string `cty:"pattern"`
	pattern       *regexp.Regexp
}

var maskRuleSpec = hcldec.ObjectSpec{
	"columns": columnSpec,
	"surrogate": &hcldec.DefaultSpec{
		Primary: &hcldec.AttrSpec{
			Name: "surrogate",
			Type: cty.String,
		},
		Default: &hcldec.LiteralSpec{Value: cty.StringVal("*")},
	},
	"pattern": &hcldec.DefaultSpec{
		Primary: &hcldec.AttrSpec{
			Name: "pattern",
			Type: cty.String,
		},
		Default: &hcldec.LiteralSpec{Value: cty.StringVal(`[^\s]`)},
	},
}

func (r *MaskRule) Apply(row *Row) error {
	for _, column := range r.Columns {
		text, err := row.Record.Field(column)
		if err != nil {
			return err
		}
		row.Record.SetField(column, r.pattern.ReplaceAllString(text, r.Surrogate))
	}
	return nil
}

func NewMaskRule(block *hcl.Block) (*MaskRule, hcl.Diagnostics) {
	rule := &MaskRule{}
	diagnostics := decodeRule(block, maskRuleSpec, rule)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	pattern, err := regexp.Compile(rule.PatternString)
	if err != nil {
		return nil, ruleDiag(block, err.Error())
	}
	rule.pattern = pattern
	return rule, diagnostics
}
