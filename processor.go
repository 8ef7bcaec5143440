package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Processor streams the input file through the configured rules one line at a
// time. Per-line failures leave the line unmasked and are logged as warnings;
// only opening the input or output file can fail the run.
type Processor struct {
	Config *Config
}

func NewProcessor(config *Config) *Processor {
	return &Processor{Config: config}
}

func (p *Processor) Run() error {
	in, err := os.Open(p.Config.Options.InputFile)
	if err != nil {
		return fmt.Errorf("could not open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(p.Config.Options.OutputFile)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()

	if err := p.process(in, out); err != nil {
		return err
	}
	return out.Close()
}

func (p *Processor) process(r io.Reader, w io.Writer) error {
	logger := p.Config.Logger
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)

	var lines, masked, warnings int
	for scanner.Scan() {
		lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			bw.WriteByte('\n')
			continue
		}

		row := &Row{Record: SplitRecord(line), Line: lines}
		if err := p.applyRules(row); err != nil {
			warnings++
			var structural *StructuralError
			if errors.As(err, &structural) {
				logger.Warn("line does not have enough columns",
					zap.Int("line", row.Line),
					zap.Int("fields", structural.Fields),
					zap.Int("column", structural.Column))
			} else {
				logger.Warn("failed to mask date, writing original line",
					zap.Int("line", row.Line),
					zap.Error(err))
			}
			bw.WriteString(line)
			bw.WriteByte('\n')
			continue
		}

		masked++
		bw.WriteString(row.Record.Join())
		bw.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	logger.Info("data masking complete",
		zap.Int("lines", lines),
		zap.Int("masked", masked),
		zap.Int("warnings", warnings))
	return nil
}

func (p *Processor) applyRules(row *Row) error {
	for _, rule := range p.Config.Rules {
		if err := rule.Apply(row); err != nil {
			return err
		}
	}
	return nil
}
