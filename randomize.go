package main

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
)

// RandomizeRule replaces the time-of-day of each configured column with
// independent uniform draws, keeping the date part intact.
type RandomizeRule struct {
	Columns []int  `cty:"columns"`
	Format  string `cty:"format"`
	codec   *Codec
	rand    Rand
}

var randomizeRuleSpec = hcldec.ObjectSpec{
	"columns": columnSpec,
	"format":  formatSpec,
}

func (r *RandomizeRule) Apply(row *Row) error {
	for _, column := range r.Columns {
		text, err := row.Record.Field(column)
		if err != nil {
			return err
		}
		t, err := r.codec.Parse(text)
		if err != nil {
			return err
		}
		randomized := time.Date(
			t.Year(), t.Month(), t.Day(),
			r.rand.IntN(24), r.rand.IntN(60), r.rand.IntN(60),
			0, t.Location(),
		)
		row.Record.SetField(column, r.codec.Format(randomized))
	}
	return nil
}

func NewRandomizeRule(block *hcl.Block, defaults *RuleDefaults) (*RandomizeRule, hcl.Diagnostics) {
	rule := &RandomizeRule{rand: defaults.Rand}
	diagnostics := decodeRule(block, randomizeRuleSpec, rule)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	codec, err := defaults.CodecFor(rule.Format)
	if err != nil {
		return nil, ruleDiag(block, err.Error())
	}
	rule.codec = codec
	return rule, diagnostics
}
