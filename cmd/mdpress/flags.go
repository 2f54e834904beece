package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	configName string

	title       string
	author      string
	pageCaption string
	footerDate  string

	fontDir string

	highlight      bool
	highlightStyle string

	frontMatter bool

	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (excluding the program name) and returns the flags
// and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}
	fs := newFlagSet(flags)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}

func newFlagSet(flags *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdpress", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&flags.configName, "config", "c", "", "config name or path (YAML)")
	fs.StringVar(&flags.title, "title", "", "PDF document title")
	fs.StringVar(&flags.author, "author", "", "PDF document author")
	fs.StringVar(&flags.pageCaption, "page-caption", "", "word drawn before the footer page number")
	fs.StringVar(&flags.footerDate, "footer-date", "", `footer date ("auto", "auto:FORMAT", or literal)`)
	fs.StringVar(&flags.fontDir, "font-dir", "", "directory containing the Liberation font files")
	fs.BoolVar(&flags.highlight, "highlight", false, "syntax-highlight code blocks")
	fs.StringVar(&flags.highlightStyle, "highlight-style", "", "chroma style for --highlight")
	fs.BoolVar(&flags.frontMatter, "front-matter", false, "strip an opening YAML front matter block")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the confirmation line")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output(), fs) }
	return fs
}

// printUsage writes the usage line and flag help.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: mdpress <input.md> <output.pdf>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
