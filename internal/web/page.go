package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/MoodyShoo/simple-calculator/internal/form"
	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

//go:embed assets
var embedded embed.FS

// assetsFs возвращает файловую систему со страницей и стилями.
func assetsFs(config *Config) afero.Fs {
	if config.StaticDir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), config.StaticDir))
	}

	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}

type button struct {
	Value string
	Label string
}

type pageData struct {
	Title      string
	First      string
	Second     string
	Buttons    []button
	State      string
	Result     string
	ErrorTitle string
	Error      string
}

type page struct {
	title   string
	tmpl    *template.Template
	style   []byte
	buttons []button
}

func loadPage(afs afero.Fs, title string) (*page, error) {
	raw, err := afero.ReadFile(afs, IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IndexTemplate, err)
	}

	tmpl, err := template.New(IndexTemplate).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", IndexTemplate, err)
	}

	style, err := afero.ReadFile(afs, StyleSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", StyleSheet, err)
	}

	ops := calculation.Operations()
	buttons := make([]button, 0, len(ops))
	for _, op := range ops {
		buttons = append(buttons, button{Value: op.String(), Label: op.Label()})
	}

	return &page{title: title, tmpl: tmpl, style: style, buttons: buttons}, nil
}

// render отрисовывает форму. actionErr используется, когда до вычисления дело не дошло.
func (p *page) render(f *form.Form, actionErr error) ([]byte, error) {
	data := pageData{
		Title:   p.title,
		First:   f.First(),
		Second:  f.Second(),
		Buttons: p.buttons,
		State:   f.State().String(),
		Result:  "-",
	}

	if v, ok := f.Result(); ok {
		data.Result = calculation.FormatResult(v)
	}

	if title, text, ok := f.Message(); ok {
		data.ErrorTitle, data.Error = title, text
	}

	if actionErr != nil {
		data.State = form.ErrorShown.String()
		data.ErrorTitle, data.Error = form.ErrorTitle, actionErr.Error()
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func etag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}
