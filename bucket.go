package main

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hcldec"
	"github.com/zclconf/go-cty/cty"
)

const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
)

func validInterval(interval string) bool {
	switch interval {
	case IntervalDay, IntervalWeek, IntervalMonth:
		return true
	}
	return false
}

// BucketRule rounds each configured column down to the start of the
// configured interval: the same day, the most recent Monday, or the first of
// the month.
type BucketRule struct {
	Columns  []int  `cty:"columns"`
	Interval string `cty:"interval"`
	Format   string `cty:"format"`
	codec    *Codec
}

var bucketRuleSpec = hcldec.ObjectSpec{
	"columns": columnSpec,
	"interval": &hcldec.AttrSpec{
		Name:     "interval",
		Type:     cty.String,
		Required: true,
	},
	"format": formatSpec,
}

func (r *BucketRule) Apply(row *Row) error {
	for _, column := range r.Columns {
		text, err := row.Record.Field(column)
		if err != nil {
			return err
		}
		t, err := r.codec.Parse(text)
		if err != nil {
			return err
		}
		bucketed, err := bucket(t, r.Interval)
		if err != nil {
			return err
		}
		row.Record.SetField(column, r.codec.Format(bucketed))
	}
	return nil
}

func bucket(t time.Time, interval string) (time.Time, error) {
	switch interval {
	case IntervalDay:
		return t, nil
	case IntervalWeek:
		// back to Monday, keeping time-of-day
		return t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7)), nil
	case IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
	default:
		return time.Time{}, fmt.Errorf("invalid bucket interval: %s", interval)
	}
}

func NewBucketRule(block *hcl.Block, defaults *RuleDefaults) (*BucketRule, hcl.Diagnostics) {
	rule := &BucketRule{}
	diagnostics := decodeRule(block, bucketRuleSpec, rule)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	if !validInterval(rule.Interval) {
		return nil, ruleDiag(block, fmt.Sprintf("interval must be one of day, week, month; got %q", rule.Interval))
	}
	codec, err := defaults.CodecFor(rule.Format)
	if err != nil {
		return nil, ruleDiag(block, err.Error())
	}
	rule.codec = codec
	return rule, diagnostics
}
