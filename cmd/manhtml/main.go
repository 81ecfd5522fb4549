package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/manhtml"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/manhtml")
}

func main() {
	var (
		modeName    string
		outPath     string
		permalink   string
		showVersion bool
	)

	flags := pflag.NewFlagSet("manhtml", pflag.ExitOnError)
	flags.StringVarP(&modeName, "mode", "m", "html", "Output mode: html|frontmatter|raw")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&permalink, "permalink", "", "Front matter permalink override")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: manhtml [flags] [manpage]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, roff is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	mode, err := manhtml.ParseMode(modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --mode: %v\n", err)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "expected at most one input")
		flags.Usage()
		os.Exit(2)
	}
	input := "-"
	if len(args) == 1 && args[0] != "-" {
		input = normalizePath(args[0])
	}
	if input == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "refusing to read roff from a terminal; pass a file or pipe input")
		flags.Usage()
		os.Exit(2)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}

	var opts []manhtml.ConvertOption
	if permalink != "" {
		opts = append(opts, manhtml.WithPermalink(permalink))
	}
	if err := manhtml.Convert(manhtml.ConvertRequest{
		Input:   input,
		Writer:  writer,
		Mode:    mode,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if closeOut != nil {
		if err := closeOut.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close output: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
