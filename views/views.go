package views

import (
	"embed"
	"html/template"

	"pos-client/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load parses the page templates. Pages are addressed by file name
// ("auth.html", "pos.html"); shared fragments are named with define.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money":     utils.FormatAmount,
		"timestamp": utils.FormatTimestamp,
	}).ParseFS(templateFS, "templates/*.html")
}
