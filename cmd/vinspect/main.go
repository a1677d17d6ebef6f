package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/memrt"
	"github.com/wippyai/variant/vyaml"
)

type options struct {
	file        string
	path        string
	expect      string
	call        string
	args        string
	config      string
	verbose     bool
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "YAML document to inspect (- for stdin)")
	flag.StringVar(&opts.path, "path", "", "Path to a nested value, e.g. items[2].name")
	flag.StringVar(&opts.expect, "expect", "", "Fail unless the value has this type")
	flag.StringVar(&opts.call, "call", "", "Builtin method to call on the value")
	flag.StringVar(&opts.args, "args", "", "Call arguments as a YAML sequence, e.g. [1, x]")
	flag.StringVar(&opts.config, "config", "", "YAML config file")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if opts.file == "" {
		fmt.Fprintln(os.Stderr, "Usage: vinspect -file <doc.yaml> [-path a.b[0]] [-expect Type]")
		fmt.Fprintln(os.Stderr, "       vinspect -file <doc.yaml> -path p -call method [-args '[...]']")
		fmt.Fprintln(os.Stderr, "       vinspect -file <doc.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := cfg.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	variant.SetLogger(logger)

	rt := memrt.New(memrt.WithLogger(logger))
	defer rt.Close()
	variant.SetRuntime(rt)
	defer variant.SetRuntime(nil)

	root, err := readDocument(opts.file, stdin)
	if err != nil {
		return err
	}
	defer root.Release()
	logger.Debug("document loaded", zap.String("file", opts.file), zap.Stringer("type", root.Type()))

	if opts.interactive {
		return runInteractive(opts.file, root)
	}

	p := newPrinter(stdout, cfg)
	p.title("Document", opts.file)

	v := root
	if opts.path != "" {
		v, err = root.Lookup(opts.path)
		if err != nil {
			return err
		}
		p.title("Path", opts.path)
	}

	if opts.expect != "" {
		want, err := variant.ParseTag(opts.expect)
		if err != nil {
			return err
		}
		if v.Type() != want {
			return errors.InvalidTag(want, v.Type())
		}
	}

	if opts.call == "" {
		p.value(v)
		return nil
	}

	args, err := parseArgs(opts.args)
	if err != nil {
		return err
	}
	defer releaseAll(args)

	p.title("Call", opts.call)
	ret, err := v.Call(opts.call, args...)
	if err != nil {
		return err
	}
	defer ret.Release()
	p.value(ret)
	return nil
}

func readDocument(file string, stdin io.Reader) (variant.Variant, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return variant.Nil(), fmt.Errorf("read document: %w", err)
	}
	return vyaml.Decode(data)
}

// parseArgs decodes a YAML flow sequence into call arguments. The caller
// owns the returned values.
func parseArgs(src string) ([]variant.Variant, error) {
	if src == "" {
		return nil, nil
	}
	v, err := vyaml.Decode([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}
	defer v.Release()

	arr, err := v.AsArray()
	if err != nil {
		return nil, fmt.Errorf("args must be a sequence: %w", err)
	}
	args := arr.Slice()
	for i := range args {
		args[i] = args[i].Clone()
	}
	return args, nil
}

func releaseAll(vs []variant.Variant) {
	for i := range vs {
		vs[i].Release()
	}
}
