// ABOUTME: Flag parsing for the typeset demo
// ABOUTME: Locale, theme file, line limit, and verbosity switches

package main

import "flag"

type cliArgs struct {
	lang    string
	theme   string
	lines   int
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs
	flag.StringVar(&args.lang, "lang", "", "preferred language, e.g. \"it\" or \"pt-BR, en;q=0.8\"")
	flag.StringVar(&args.theme, "theme", "", "path to a YAML theme file")
	flag.IntVar(&args.lines, "lines", 3, "line limit for the truncated paragraph (0 disables)")
	flag.BoolVar(&args.verbose, "verbose", false, "enable debug logging on stderr")
	flag.BoolVar(&args.version, "version", false, "print version and exit")
	flag.Parse()
	return args
}
