package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"github.com/davejbax/go-datetimeparse"
	"github.com/davejbax/go-datetimeparse/internal/batch"
	"github.com/davejbax/go-datetimeparse/internal/config"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	format := flag.String("format", cfg.Format, "Output format: text, json or binary")
	profile := flag.String("profile", cfg.Profile, "Parsing profile: rfc3339, strict-rfc3339 or iso8601")
	strict := flag.Bool("strict", cfg.Strict, "Reject bytes after the date-time")
	label := flag.String("label", cfg.Label, "Label to prefix error messages with")
	output := flag.String("output", "", "Output file name/path (default stdout)")
	verbose := flag.Bool("verbose", cfg.Verbose, "Enable debug logging")

	flag.Parse()

	cfg.Format, cfg.Profile, cfg.Strict, cfg.Label, cfg.Verbose = strings.ToLower(*format), strings.ToLower(*profile), *strict, *label, *verbose
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatal(err)
	}

	logger := newLogger(cfg.Verbose)
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	var out io.Writer = os.Stdout
	if *output != "" {
		outputFile, err := os.OpenFile(*output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			zap.S().Fatalf("could not open output file: %v", err)
		}
		defer outputFile.Close()

		out = outputFile
	}

	var inputs lineSource
	if flag.NArg() > 0 {
		args := argsSource(flag.Args())
		inputs = &args
	} else {
		inputs = newReaderSource(os.Stdin)
	}

	w := bufio.NewWriter(out)
	failures, err := run(cfg, inputs, w, os.Stderr)
	if flushErr := w.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("could not flush output: %w", flushErr)
	}

	if err != nil {
		zap.S().Fatal(err)
	}

	if failures > 0 {
		zap.S().Debugw("some inputs could not be parsed", "failures", failures)
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatal(err)
	}

	return logger
}

// lineSource yields one input per call to Next, like bufio.Scanner
type lineSource interface {
	Next() ([]byte, bool)
	Err() error
}

type argsSource []string

func (a *argsSource) Next() ([]byte, bool) {
	if len(*a) == 0 {
		return nil, false
	}

	next := (*a)[0]
	*a = (*a)[1:]
	return []byte(next), true
}

func (*argsSource) Err() error {
	return nil
}

// readerSource yields the lines of a reader. Unlike bufio.Scanner it has no limit on line length, since a fraction may
// have any number of digits.
type readerSource struct {
	reader *bufio.Reader
	done   bool
	err    error
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{reader: bufio.NewReader(r)}
}

func (r *readerSource) Next() ([]byte, bool) {
	if r.done {
		return nil, false
	}

	line, err := r.reader.ReadBytes('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
			return nil, false
		}

		// A final line without a newline is still a line
		if len(line) == 0 {
			return nil, false
		}
	}

	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, true
}

func (r *readerSource) Err() error {
	return r.err
}

// parseOptions maps a profile name onto parse options. Strict mode additionally rejects trailing bytes.
func parseOptions(cfg config.Config) datetimeparse.ParseOptions {
	var opts datetimeparse.ParseOptions
	switch cfg.Profile {
	case config.ProfileStrictRFC3339:
		opts = datetimeparse.StrictRFC3339
	case config.ProfileISO8601:
		opts = datetimeparse.ISO8601
	default:
		opts = datetimeparse.RFC3339
	}

	if cfg.Strict {
		opts.RejectTrailing = true
	}

	return opts
}

// run parses every input, writing results to out and a description of each failure to diag. It returns the number of
// inputs that failed to parse; the error is only set when output could not be written.
func run(cfg config.Config, inputs lineSource, out io.Writer, diag io.Writer) (int, error) {
	opts := parseOptions(cfg)

	var records *batch.RecordWriter
	if cfg.Format == config.FormatBinary {
		records = batch.NewRecordWriter(out)
	}

	encoder := json.NewEncoder(out)

	var line uint32
	failures := 0
	for ; ; line++ {
		input, ok := inputs.Next()
		if !ok {
			break
		}

		dt, err := datetimeparse.ParseWithOptions(input, len(input), opts)
		if err != nil {
			failures++
			zap.S().Debugw("could not parse input", "line", line+1, "input", string(input), "error", err)
			datetimeparse.Perror(diag, fmt.Sprintf("%s line %d", cfg.Label, line+1), err)
			continue
		}

		switch cfg.Format {
		case config.FormatBinary:
			err = records.WriteRecord(line, dt)
		case config.FormatJSON:
			err = encoder.Encode(dt)
		default:
			err = writeText(out, line+1, dt)
		}

		if err != nil {
			return failures, fmt.Errorf("could not write result for line %d: %w", line+1, err)
		}
	}

	if err := inputs.Err(); err != nil {
		return failures, fmt.Errorf("could not read input: %w", err)
	}

	if records != nil {
		// Trailing failures still get a zeroed record, so that the output has one record per input
		if err := records.Pad(line); err != nil {
			return failures, err
		}

		zap.S().Debugw("wrote records", "records", records.RecordsWritten(), "bytes", records.BytesWritten())
	}

	return failures, nil
}

// writeText prints the fields of dt under a header naming its 1-based input line
func writeText(w io.Writer, line uint32, dt datetimeparse.LocalDateTime) error {
	_, err := fmt.Fprintf(w,
		"line %d:\n  year: %d\n  month: %d\n  day: %d\n  hour: %d\n  minute: %d\n  second: %d\n  millisecond: %d\n",
		line, dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Millisecond,
	)
	return err
}
