// Command minify builds the dist/ directory the server uses in production.
//
//	go run ./cmd/minify                      # templates/ and static/ into dist/
//	go run ./cmd/minify -input=a.css -output=dist/a.css
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Single input file path")
		outputFile = flag.String("output", "", "Single output file path")
		outDir     = flag.String("out", "dist", "Output directory for tree mode")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	m := newMinifier()

	if *inputFile != "" || *outputFile != "" {
		if *inputFile == "" || *outputFile == "" {
			log.Fatal().Msg("Usage: go run ./cmd/minify -input=<file> -output=<file>")
		}
		mediaType := mediaTypeFor(*inputFile)
		if mediaType == "" {
			log.Fatal().Str("file", *inputFile).Msg("Unsupported file type (supported: .css, .js, .html)")
		}
		if err := minifyFile(m, *inputFile, *outputFile, mediaType); err != nil {
			log.Fatal().Err(err).Msg("Minification failed")
		}
		return
	}

	total := 0
	for _, dir := range []string{"templates", "static"} {
		n, err := minifyTree(m, dir, *outDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("Minification failed")
		}
		total += n
	}
	log.Info().Int("files", total).Str("out", *outDir).Msg("Minification complete")
}
