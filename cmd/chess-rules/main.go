// chess-rules plays and analyzes chess positions under the full rules of
// the game: it reads coordinate moves or FEN lines and reports legal moves,
// check, checkmate and stalemate.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fatalf("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	input, closeInput := openInput(flag.Args())
	defer closeInput()

	if *analyzeMode {
		err = runAnalyze(cfg, input)
	} else {
		err = runPlay(cfg, input, *startFEN, *svgFile)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [file...]\n\n")
	fmt.Fprintf(os.Stderr, "Play mode (default) reads moves such as e2e4 or e7e8q.\n")
	fmt.Fprintf(os.Stderr, "Analyze mode (-analyze) reads one FEN per line.\n")
	fmt.Fprintf(os.Stderr, "Input comes from the named files, or stdin.\n\n")
	flag.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "chess-rules: "+format+"\n", args...)
	os.Exit(1)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fatalf("creating log file %s: %v", *logFile, err)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fatalf("creating output file %s: %v", *outputFile, err)
	}
	cfg.SetOutput(file)
}

// openInput concatenates the named files, or returns stdin when there are
// none.
func openInput(names []string) (io.Reader, func()) {
	if len(names) == 0 {
		return os.Stdin, func() {}
	}

	readers := make([]io.Reader, 0, len(names))
	files := make([]*os.File, 0, len(names))
	for _, name := range names {
		file, err := os.Open(name)
		if err != nil {
			fatalf("opening %s: %v", name, err)
		}
		files = append(files, file)
		readers = append(readers, file)
	}
	return io.MultiReader(readers...), func() {
		for _, f := range files {
			f.Close()
		}
	}
}
