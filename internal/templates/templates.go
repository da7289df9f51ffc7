package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Page parses the booking page template.
func Page() (*template.Template, error) {
	return template.New("index.html").Funcs(funcs).ParseFS(files, "index.html")
}
