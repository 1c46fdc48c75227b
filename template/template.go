package template

import (
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var globalFuncs = map[string]interface{}{
	"Env": func(name string) string {
		return os.Getenv(name)
	},
	"Default": func(defaultValue string, value string) string {
		if value == "" {
			return defaultValue
		}
		return value
	},
	"Trim": func(s string) string {
		return strings.Trim(s, " \t\r\n")
	},
}

func evaluate(templateStr string, ctx *TemplateContext) (string, error) {
	if ctx == nil {
		ctx = NewTemplateContext()
	}
	parsed, err := template.New("template-string").Funcs(globalFuncs).Funcs(ctx.funcs).Parse(templateStr)
	if err != nil {
		return "", errors.Wrap(err, "cannot parse template")
	}

	var buf = new(bytes.Buffer)
	if err := parsed.Execute(buf, ctx.variables); err != nil {
		return "", errors.Wrap(err, "cannot evaluate")
	}
	return strings.TrimSpace(buf.String()), nil
}
