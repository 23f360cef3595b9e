package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter renders each label as a boxed node on a static page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/labels.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("labels").Funcs(template.FuncMap{
	"curr": FormatCurrency,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
