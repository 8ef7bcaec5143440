package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"
)

// Config is the resolved, immutable run configuration: the options as given
// plus the rules they select. It is constructed once, before any file I/O.
type Config struct {
	Options *Options
	Rules   []Rule
	Logger  *zap.Logger
}

func NewConfig(opts *Options, logger *zap.Logger) (*Config, error) {
	config := &Config{Options: opts, Logger: logger}

	if opts.ColumnIndex < 0 {
		return nil, &UsageError{Message: fmt.Sprintf("--column_index must not be negative, got %d", opts.ColumnIndex)}
	}
	if opts.ShiftDays < 0 {
		return nil, &UsageError{Message: fmt.Sprintf("--shift_days must not be negative, got %d", opts.ShiftDays)}
	}

	defaults := &RuleDefaults{Format: opts.DateFormat, Rand: defaultRand}

	if opts.ConfigFile != "" {
		if opts.ShiftDays > 0 || opts.BucketInterval != "" || opts.RandomizeTime {
			return nil, &UsageError{Message: "--config cannot be combined with --shift_days, --bucket_interval, or --randomize_time"}
		}
		rules, err := LoadRules(opts.ConfigFile, defaults)
		if err != nil {
			return nil, err
		}
		config.Rules = rules
		return config, nil
	}

	if opts.ShiftDays > 0 && opts.BucketInterval != "" {
		return nil, &UsageError{Message: "--shift_days and --bucket_interval are mutually exclusive. Choose only one."}
	}
	if opts.ShiftDays == 0 && opts.BucketInterval == "" && !opts.RandomizeTime {
		return nil, &UsageError{Message: "at least one of --shift_days, --bucket_interval, or --randomize_time must be specified"}
	}

	codec, err := NewCodec(opts.DateFormat)
	if err != nil {
		return nil, &UsageError{Message: err.Error()}
	}

	columns := []int{opts.ColumnIndex}

	// Shift wins over Bucket, which wins over Randomize. Only the shift/bucket
	// combination is rejected above; combining either with --randomize_time
	// silently runs the higher-precedence mode, matching the historical
	// behavior of this tool.
	switch {
	case opts.ShiftDays > 0:
		config.Rules = []Rule{&ShiftRule{Columns: columns, MaxDays: opts.ShiftDays, codec: codec, rand: defaults.Rand}}
	case opts.BucketInterval != "":
		if !validInterval(opts.BucketInterval) {
			return nil, &UsageError{Message: fmt.Sprintf("invalid bucket interval: %s", opts.BucketInterval)}
		}
		config.Rules = []Rule{&BucketRule{Columns: columns, Interval: opts.BucketInterval, codec: codec}}
	default:
		config.Rules = []Rule{&RandomizeRule{Columns: columns, codec: codec, rand: defaults.Rand}}
	}
	return config, nil
}

// LoadRules reads an HCL rules file and constructs its rule blocks in file
// order.
func LoadRules(path string, defaults *RuleDefaults) ([]Rule, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)

	var rules []Rule
	if !diags.HasErrors() {
		content, moreDiags := f.Body.Content(rulesSchema)
		diags = append(diags, moreDiags...)
		for _, block := range content.Blocks {
			rule, moreDiags := NewRule(block, defaults)
			if diags = append(diags, moreDiags...); moreDiags.HasErrors() {
				continue
			}
			rules = append(rules, rule)
		}
	}

	if diags.HasErrors() {
		var sb strings.Builder
		wr := hcl.NewDiagnosticTextWriter(&sb, parser.Files(), 78, false)
		wr.WriteDiagnostics(diags)
		return nil, &UsageError{Message: sb.String()}
	}
	if len(rules) == 0 {
		return nil, &UsageError{Message: fmt.Sprintf("no rules defined in %s", path)}
	}
	return rules, nil
}
