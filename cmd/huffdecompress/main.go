// Command huffdecompress restores a file from a container written by
// huffcompress.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"

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
	fs := flag.NewFlagSet("huffdecompress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts cli.Options
	opts.Register(fs)
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

	f, err := os.Open(opts.In)
	if err != nil {
		logg.Errorf("%v", err)
		return cli.ExitFailure
	}
	defer f.Close()

	var written int64
	err = atomicfile.Write(opts.Out, 0o644, func(w io.Writer) error {
		n, err := huffman.Read(bufio.NewReader(f), w)
		written = n
		return err
	})
	if err != nil {
		logg.Errorf("decompress %s: %v", opts.In, err)
		return cli.ExitFailure
	}

	p := message.NewPrinter(language.English)
	logg.Infof("%s", p.Sprintf("restored %d bytes from %s", written, opts.In))
	return cli.ExitOK
}
