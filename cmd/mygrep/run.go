package main

import (
	"bufio"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/markre"
	"github.com/coregx/markre/internal/conv"
	"github.com/coregx/markre/pattern"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitIOError = 2

	usage = "usage: mygrep <pattern> [input-file.txt]"

	modeMarks = "marks"
	modeLines = "lines"

	// Lines may grow to maxLineSize; the scanner starts from initLineBuf.
	initLineBuf = 64 << 10
	maxLineSize = 256 << 20
)

var defaultSamples = []string{"abc", "abbbcbbdb", "abcbcdbcb"}

// exitError carries the process status out of a cobra RunE.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// matcher is implemented by *markre.Regex and *markre.Set.
type matcher interface {
	Marks(line []byte, before []bool) []bool
	Match(line []byte) bool
	Close() error
}

type options struct {
	patterns []string
	input    string
	mode     string
	samples  []string
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	conf := viper.New()
	cmd := newRootCmd(conf, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(stderr, ee.msg)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, err)
	return exitFailure
}

func newRootCmd(conf *viper.Viper, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mygrep <pattern> [input-file.txt]",
		Short: "Report where a pattern can end in each line",
		Long: `
mygrep parses a pattern of ordinary characters and reports, for every line of
the input file, each position where a match of the pattern ends. Matches are
shown by a '*' in front of the character that follows them.

Without an input file, mygrep prints the marks before and after matching for
a few sample lines.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return &exitError{code: exitFailure, msg: usage}
			}
			return nil
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// glog complains when its flags were never parsed.
			if !goflag.Parsed() {
				_ = goflag.CommandLine.Parse(nil)
			}
			cfg := conf.GetString("config")
			if cfg == "" {
				return nil
			}
			conf.SetConfigFile(cfg)
			return errors.Wrapf(conf.ReadInConfig(), "reading config %s", cfg)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			opt := options{
				patterns: append([]string{args[0]}, conf.GetStringSlice("regexp")...),
				mode:     conf.GetString("mode"),
				samples:  conf.GetStringSlice("sample"),
			}
			if len(args) == 2 {
				opt.input = args[1]
			}
			return run(opt, stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("mode", modeMarks,
		"Output mode: 'marks' prints every line with its match marks, "+
			"'lines' prints only the lines that match")
	flags.StringSliceP("regexp", "e", nil,
		"Additional pattern; a line is marked wherever any pattern matches")
	flags.StringSlice("sample", defaultSamples,
		"Lines used for the demonstration when no input file is given")
	flags.String("config", "",
		"Configuration file. Flags and MYGREP_* environment variables override it.")

	_ = conf.BindPFlags(flags)
	conf.SetEnvPrefix("MYGREP")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	return cmd
}

func run(opt options, stdout io.Writer) error {
	if opt.mode != modeMarks && opt.mode != modeLines {
		return &exitError{code: exitFailure,
			msg: fmt.Sprintf("unknown mode %q, want %q or %q", opt.mode, modeMarks, modeLines)}
	}

	var in *os.File
	if opt.input != "" {
		f, err := os.Open(opt.input)
		if err != nil {
			glog.V(1).Infof("open %s: %v", opt.input, err)
			return &exitError{code: exitFailure, msg: "Can't open input file: " + opt.input}
		}
		defer f.Close()
		in = f
	}

	m, err := compile(opt.patterns)
	if err != nil {
		glog.V(1).Infof("%v", err)
		return &exitError{code: exitFailure, msg: "Invalid pattern"}
	}
	defer m.Close()

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	if in == nil {
		return demo(w, m, opt.patterns, opt.samples)
	}
	matched, err := scanLines(w, m, in, opt.mode)
	if err != nil {
		return &exitError{code: exitIOError, msg: err.Error()}
	}
	if opt.mode == modeLines && !matched {
		return &exitError{code: exitFailure}
	}
	return nil
}

// compile checks each pattern up front, then builds a Regex, or a Set when
// there is more than one pattern.
func compile(patterns []string) (matcher, error) {
	for _, p := range patterns {
		if err := pattern.Validate(p); err != nil {
			return nil, err
		}
	}
	if len(patterns) == 1 {
		re, err := markre.Compile(patterns[0])
		if err != nil {
			return nil, err
		}
		return re, nil
	}
	set, err := markre.CompileSet(patterns)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// demo prints the marks before and after matching for each sample line.
func demo(w io.Writer, m matcher, patterns, samples []string) error {
	fmt.Fprintf(w, "For pattern '%s'\n", strings.Join(patterns, "' or '"))
	for _, s := range samples {
		line := []byte(s)
		before := pattern.AllMarks(len(line))

		fmt.Fprint(w, "Before matching: ")
		if err := markre.ReportMarks(w, line, before); err != nil {
			return err
		}
		fmt.Fprint(w, "After matching:  ")
		if err := markre.ReportMarks(w, line, m.Marks(line, before)); err != nil {
			return err
		}
	}
	return nil
}

// scanLines matches every line of r and reports according to mode. It
// returns whether any line matched.
func scanLines(w io.Writer, m matcher, r io.Reader, mode string) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initLineBuf), maxLineSize)
	var lines, size uint64
	matched := false
	for sc.Scan() {
		line := sc.Bytes()
		lines++
		size += conv.IntToUint64(len(line) + 1)

		switch mode {
		case modeLines:
			if !m.Match(line) {
				continue
			}
			matched = true
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return matched, errors.Wrap(err, "writing output")
			}
		default:
			after := m.Marks(line, pattern.AllMarks(len(line)))
			if pattern.Marks(after).Any() {
				matched = true
			}
			if err := markre.ReportMarks(w, line, after); err != nil {
				return matched, errors.Wrap(err, "writing output")
			}
		}
		glog.V(2).Infof("line %d: matched=%v", lines, matched)
	}
	if err := sc.Err(); err != nil {
		return matched, errors.Wrapf(err, "reading line %d", lines+1)
	}
	glog.V(1).Infof("scanned %s in %d lines", humanize.Bytes(size), lines)
	return matched, nil
}
