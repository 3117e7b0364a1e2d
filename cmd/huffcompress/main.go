// Command huffcompress writes the Huffman-compressed container of a file.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/atomicfile"
	"github.com/chronos-tachyon/huffpack/internal/cli"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffcompress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts cli.Options
	opts.Register(fs)
	workers := fs.Int("j", runtime.NumCPU(), "goroutines used to count byte frequencies")
	dump := fs.Bool("dump", false, "print the code table to stderr")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsage
	}

	logg := logger.New(stderr)
	if opts.Quiet {
		logg = logger.Discard(stderr)
	}

	if err := opts.ResolvePaths(stdin, stdout); err != nil {
		logg.Errorf("%v", err)
		return cli.ExitUsage
	}

	data, err := os.ReadFile(opts.In)
	if err != nil {
		logg.Errorf("%v", err)
		return cli.ExitFailure
	}

	table, err := huffman.CountParallel(context.Background(), data, *workers)
	if err != nil {
		logg.Errorf("count %s: %v", opts.In, err)
		return cli.ExitFailure
	}

	if *dump {
		if tree, err := huffman.BuildTree(&table); err == nil {
			if codes, err := huffman.AssignCodes(tree); err == nil {
				_, _ = codes.Dump(stderr)
			}
		}
	}

	var written int64
	err = atomicfile.Write(opts.Out, 0o644, func(w io.Writer) error {
		n, err := huffman.EncodeWithTable(w, &table, data)
		written = n
		return err
	})
	if err != nil {
		logg.Errorf("compress %s: %v", opts.In, err)
		return cli.ExitFailure
	}

	p := message.NewPrinter(language.English)
	logg.Infof("%s", p.Sprintf("compressed %d bytes into %d bytes (%d distinct symbols)", len(data), written, table.Distinct()))
	return cli.ExitOK
}
