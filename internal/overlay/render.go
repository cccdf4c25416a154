package overlay

import (
	"strings"
	"text/template"
)

// overlayTemplateText reproduces the layout older versions wrote, including
// the trailing spaces after each binding, so regenerated files diff cleanly.
const overlayTemplateText = Marker + "\n" +
	"{{range .Packages}}# {{.Name}} {{.URL}} {{.SHA256}}\n{{end}}" +
	"\n" +
	"{pkgs}: {\n" +
	"    overlay = (final: prev: {\n" +
	"{{range .Packages}}" +
	"{{.Name}} = (import (fetchTarball {\n" +
	"            url = \"{{.URL}}\";\n" +
	"            sha256 = \"{{.SHA256}}\";\n" +
	"        }) { system = pkgs.system; }).{{.Name}};\n" +
	"        \n" +
	"{{end}}" +
	"        \n" +
	"    });\n" +
	"}"

var overlayTemplate = template.Must(template.New("overlay").Parse(overlayTemplateText))

// Render returns the overlay file contents.
func (o *Overlay) Render() (string, error) {
	var sb strings.Builder
	if err := overlayTemplate.Execute(&sb, o); err != nil {
		return "", err
	}
	return sb.String(), nil
}
