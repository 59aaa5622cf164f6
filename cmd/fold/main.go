// Command fold breaks long lines so that none is wider than a given number
// of units.
//
// Usage:
//
//	fold [flags] [file]
//
// Flags:
//
//	-w, --width N    Width to fold at (default 80)
//	-b, --bytes      Count bytes not graphemes. Can cause invalid Unicode sequences.
//	-c, --chars      Count unicode characters not graphemes.
//	-s, --spaces     Split at whitespaces when possible.
//	-V, --version    Print version and exit.
//
// The file defaults to "-", which reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fwojciec/fold"
	"github.com/fwojciec/fold/uniseg"
)

func main() {
	// Let writes to a closed pipe fail with EPIPE instead of killing us.
	signal.Ignore(syscall.SIGPIPE)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fold: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	width   fold.Width
	mode    fold.Mode
	spaces  bool
	version bool
	file    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("fold", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		width               string
		bytes, chars        bool
		spaces, showVersion bool
	)
	defaultWidth := strconv.Itoa(int(fold.DefaultWidth))
	fs.StringVar(&width, "w", defaultWidth, "Width to fold at.")
	fs.StringVar(&width, "width", defaultWidth, "Width to fold at.")
	fs.BoolVar(&bytes, "b", false, "Count bytes not graphemes. Can cause invalid Unicode sequences.")
	fs.BoolVar(&bytes, "bytes", false, "Count bytes not graphemes. Can cause invalid Unicode sequences.")
	fs.BoolVar(&chars, "c", false, "Count unicode characters not graphemes.")
	fs.BoolVar(&chars, "chars", false, "Count unicode characters not graphemes.")
	fs.BoolVar(&spaces, "s", false, "Split at whitespaces when possible.")
	fs.BoolVar(&spaces, "spaces", false, "Split at whitespaces when possible.")
	fs.BoolVar(&showVersion, "V", false, "Print version and exit.")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit.")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fold [flags] [file]\n\nUtility to fold long lines. File defaults to -, which is stdin.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{spaces: spaces, version: showVersion, file: "-"}
	if showVersion {
		return opts, nil
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return options{}, fmt.Errorf("too many arguments: %q", fs.Args()[1:])
	}

	w, err := fold.ParseWidth(width)
	if err != nil {
		return options{}, err
	}
	opts.width = w

	mode, err := fold.ModeFromFlags(bytes, chars)
	if err != nil {
		return options{}, err
	}
	opts.mode = mode
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.version {
		_, err := fmt.Fprintf(stdout, "fold %s\n", fold.Version)
		return err
	}

	in := stdin
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	folder := fold.NewFolder(uniseg.New(opts.mode), opts.width)
	err = folder.Fold(in, stdout, fold.WithSplitOnSpace(opts.spaces))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syscall.EPIPE):
		// Downstream stopped reading; not an error.
		return nil
	case errors.Is(err, fold.ErrMalformedText):
		return err
	default:
		return fmt.Errorf("I/O error: %w", err)
	}
}
