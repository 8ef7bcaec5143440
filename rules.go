package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Rule applies one masking transformation to the configured columns of a row.
type Rule interface {
	Apply(*Row) error
}

// RuleDefaults carries the run-wide settings rule constructors fall back to
// when a rule block leaves them out.
type RuleDefaults struct {
	Format string
	Rand   Rand
}

// CodecFor builds a codec for the rule's own format, or the run default when
// the block did not set one.
func (d *RuleDefaults) CodecFor(format string) (*Codec, error) {
	if format == "" {
		format = d.Format
	}
	return NewCodec(format)
}

var columnSpec = &hcldec.AttrSpec{
	Name:     "columns",
	Type:     cty.List(cty.Number),
	Required: true,
}

var formatSpec = &hcldec.DefaultSpec{
	Primary: &hcldec.AttrSpec{
		Name: "format",
		Type: cty.String,
	},
	Default: &hcldec.LiteralSpec{Value: cty.StringVal("")},
}

var rulesSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{
			Type:       "rule",
			LabelNames: []string{"type"},
		},
	},
}

// NewRule dispatches on the block label to the matching rule constructor.
func NewRule(block *hcl.Block, defaults *RuleDefaults) (Rule, hcl.Diagnostics) {
	switch block.Labels[0] {
	case "shift":
		return NewShiftRule(block, defaults)
	case "bucket":
		return NewBucketRule(block, defaults)
	case "randomize":
		return NewRandomizeRule(block, defaults)
	case "mask":
		return NewMaskRule(block)
	default:
		attrRange := block.DefRange
		return nil, hcl.Diagnostics{
			&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("%s is not a recognized rule type", block.Labels[0]),
				Subject:  &attrRange,
			},
		}
	}
}

func decodeRule(block *hcl.Block, spec hcldec.Spec, rule interface{}) hcl.Diagnostics {
	decodedSpec, diagnostics := hcldec.Decode(block.Body, spec, nil)
	if diagnostics.HasErrors() {
		return diagnostics
	}
	if err := gocty.FromCtyValue(decodedSpec, rule); err != nil {
		attrRange := block.Body.MissingItemRange()
		return hcl.Diagnostics{
			&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("error while configuring %s rule: %v", block.Labels[0], err.Error()),
				Subject:  &attrRange,
			},
		}
	}
	return nil
}

func ruleDiag(block *hcl.Block, summary string) hcl.Diagnostics {
	defRange := block.DefRange
	return hcl.Diagnostics{
		&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Subject:  &defRange,
		},
	}
}
