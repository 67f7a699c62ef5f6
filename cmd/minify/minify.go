package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// mediaTypes maps the asset extensions the server ships to minifier media types.
var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
		TemplateDelims:   html.GoTemplateDelims,
	})
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// mediaTypeFor returns the media type for a file or "" when it is not minified.
func mediaTypeFor(path string) string {
	return mediaTypes[strings.ToLower(filepath.Ext(path))]
}

// minifyTree minifies every known asset under srcDir into outDir, keeping the
// srcDir prefix so templates/ ends up at outDir/templates/.
func minifyTree(m *minify.M, srcDir, outDir string) (int, error) {
	count := 0
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		mediaType := mediaTypeFor(path)
		if mediaType == "" {
			return nil
		}
		if err := minifyFile(m, path, filepath.Join(outDir, path), mediaType); err != nil {
			return fmt.Errorf("minify %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}

	ratio := 0.0
	if len(src) > 0 {
		ratio = float64(len(src)-len(minified)) / float64(len(src)) * 100
	}
	log.Info().
		Str("file", srcPath).
		Int("before", len(src)).
		Int("after", len(minified)).
		Msgf("%.1f%% reduction", ratio)
	return nil
}
