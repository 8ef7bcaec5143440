package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type Options struct {
	ShiftDays      int    `long:"shift_days" description:"Shift dates by a random number of days up to this many in either direction" default:"0"`
	BucketInterval string `long:"bucket_interval" description:"Bucket dates into broader time intervals" choice:"day" choice:"week" choice:"month"`
	InputFile      string `long:"input_file" description:"Path to the input file containing time-related data" required:"true"`
	OutputFile     string `long:"output_file" description:"Path to the output file to write the masked data" required:"true"`
	DateFormat     string `long:"date_format" description:"Format of the date values in the input file" default:"%Y-%m-%d"`
	ColumnIndex    int    `long:"column_index" description:"Zero-based index of the column containing the date" default:"0"`
	RandomizeTime  bool   `long:"randomize_time" description:"Randomize the time portion of each date"`
	ConfigFile     string `short:"c" long:"config" description:"Path to an HCL rules file (cannot be combined with the mode flags)"`
	Verbose        []bool `short:"v" long:"verbose" description:"Show verbose debug information"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}

	logger := NewLogger(len(opts.Verbose))
	defer logger.Sync()

	config, err := NewConfig(&opts, logger)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", usage.Message)
			parser.WriteHelp(os.Stderr)
		} else {
			logger.Error(err.Error())
		}
		return 1
	}

	processor := NewProcessor(config)
	if err := processor.Run(); err != nil {
		logger.Error("processing failed", zap.Error(err))
		return 1
	}
	return 0
}
