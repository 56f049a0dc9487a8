// Command incommand-classify classifies free-text incident reports from
// the command line. Text comes from the arguments or stdin, one report
// per line; results print as JSON, one object per line
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"incommand/internal/core/lexicon"
	"incommand/internal/core/normalize"
	"incommand/internal/core/priority"
	"incommand/internal/core/version"
	"incommand/internal/platform/logger"
)

func main() {
	var (
		typeLabel = flag.String("type", "", "incident type label, e.g. Medical")
		pretty    = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	l := logger.Get()

	pk, err := lexicon.Load()
	if err != nil {
		l.Fatal().Err(err).Msg("lexicon load failed")
	}
	cls := priority.New(pk, version.Classifier)
	norm := normalize.New()

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	classify := func(text string) {
		m := cls.Classify(norm.Normalize(text), *typeLabel)
		if err := enc.Encode(m); err != nil {
			l.Fatal().Err(err).Msg("encode failed")
		}
	}

	if flag.NArg() > 0 {
		classify(strings.Join(flag.Args(), " "))
		return
	}

	// no args: read one report per line from stdin
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		classify(line)
	}
	if err := sc.Err(); err != nil {
		l.Fatal().Err(err).Msg("stdin read failed")
	}
}
