package common

import (
	"bytes"
	htmltemplate "html/template"
	"text/template"
)

func ExecuteTemplate(source string, data any) (string, error) {
	tmpl, err := template.New("template").Parse(source)
	if err != nil {
		return "", err
	}

	buffer := bytes.NewBuffer(nil)
	err = tmpl.Execute(buffer, data)
	if err != nil {
		return "", err
	}

	return buffer.String(), nil
}

// ExecuteHTMLTemplate is the same as ExecuteTemplate but escapes values for
// html output.
func ExecuteHTMLTemplate(source string, data any) (string, error) {
	tmpl, err := htmltemplate.New("template").Parse(source)
	if err != nil {
		return "", err
	}

	buffer := bytes.NewBuffer(nil)
	err = tmpl.Execute(buffer, data)
	if err != nil {
		return "", err
	}

	return buffer.String(), nil
}
