package lines

import (
	"fmt"
	"io"
	"text/template"
)

// Template returns a RenderFunc that executes a Go text/template against
// each item. The template is parsed once; a parse failure wraps
// [ErrInvalidTemplate]. Execution failures are returned as-is.
//
//	render, err := lines.Template[Album]("{{.Title}} by {{.Artist}}")
//	err = lines.WriteFunc(os.Stdout, render, albums...)
func Template[T any](text string) (RenderFunc[T], error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(w io.Writer, item T) error {
		return tmpl.Execute(w, item)
	}, nil
}
