// Package cli holds the plumbing shared by huffcompress and huffdecompress:
// flag parsing, interactive path prompts, and the identical-path check.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrSamePath is returned when the input and output paths name the same
// file.
var ErrSamePath = errors.New("input and output paths are identical")

// Options holds the flags common to both commands.
type Options struct {
	In    string
	Out   string
	Quiet bool
}

// Register binds the common flags to fs.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.In, "in", "", "path of the file to read")
	fs.StringVar(&o.Out, "out", "", "path of the file to write")
	fs.BoolVar(&o.Quiet, "q", false, "only report errors")
}

// ResolvePaths prompts on in/out for any path that was not given as a flag,
// then rejects identical paths.
func (o *Options) ResolvePaths(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	var err error
	if o.In == "" {
		if o.In, err = prompt(sc, out, "Enter the path to the file: "); err != nil {
			return err
		}
	}
	if o.Out == "" {
		if o.Out, err = prompt(sc, out, "Enter the path to save: "); err != nil {
			return err
		}
	}
	return CheckDistinct(o.In, o.Out)
}

// CheckDistinct returns ErrSamePath if in and out refer to the same file,
// either by name or, when both exist, by identity.
func CheckDistinct(in, out string) error {
	if filepath.Clean(in) == filepath.Clean(out) {
		return fmt.Errorf("%w: %q", ErrSamePath, in)
	}
	inInfo, err1 := os.Stat(in)
	outInfo, err2 := os.Stat(out)
	if err1 == nil && err2 == nil && os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %q and %q", ErrSamePath, in, out)
	}
	return nil
}

func prompt(sc *bufio.Scanner, out io.Writer, message string) (string, error) {
	if _, err := io.WriteString(out, message); err != nil {
		return "", err
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	path := strings.TrimSpace(sc.Text())
	if path == "" {
		return "", errors.New("empty path")
	}
	return path, nil
}
