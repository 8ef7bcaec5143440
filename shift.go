package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
)

// ShiftRule adds a uniformly random day offset in [-MaxDays, MaxDays] to each
// configured column, preserving time-of-day.
type ShiftRule struct {
	Columns []int  `cty:"columns"`
	MaxDays int    `cty:"max_days"`
	Format  string `cty:"format"`
	codec   *Codec
	rand    Rand
}

var shiftRuleSpec = hcldec.ObjectSpec{
	"columns": columnSpec,
	"max_days": &hcldec.AttrSpec{
		Name:     "max_days",
		Type:     cty.Number,
		Required: true,
	},
	"format": formatSpec,
}

func (r *ShiftRule) Apply(row *Row) error {
	for _, column := range r.Columns {
		text, err := row.Record.Field(column)
		if err != nil {
			return err
		}
		t, err := r.codec.Parse(text)
		if err != nil {
			return err
		}
		offset := r.rand.IntN(2*r.MaxDays+1) - r.MaxDays
		row.Record.SetField(column, r.codec.Format(t.AddDate(0, 0, offset)))
	}
	return nil
}

func NewShiftRule(block *hcl.Block, defaults *RuleDefaults) (*ShiftRule, hcl.Diagnostics) {
	rule := &ShiftRule{rand: defaults.Rand}
	diagnostics := decodeRule(block, shiftRuleSpec, rule)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	if rule.MaxDays <= 0 {
		return nil, ruleDiag(block, fmt.Sprintf("max_days must be greater than zero, got %d", rule.MaxDays))
	}
	codec, err := defaults.CodecFor(rule.Format)
	if err != nil {
		return nil, ruleDiag(block, err.Error())
	}
	rule.codec = codec
	return rule, diagnostics
}
