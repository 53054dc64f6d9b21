package main

import (
	"html/template"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LoadTemplates parses the HTML templates for all pages
func LoadTemplates(glob string) *template.Template {
	tmpl := template.New("")
	files, err := filepath.Glob(glob)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list templates")
	}
	if len(files) == 0 {
		log.Fatal().Str("glob", glob).Msg("no templates found")
	}
	for _, f := range files {
		tmpl = template.Must(tmpl.ParseFiles(f))
	}
	return tmpl
}
