// Package web — шаблоны виджета и статика (JS/CSS), встроенные в бинарник.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl static/*
var files embed.FS

// Templates — все шаблоны виджета ("page", "sales_table").
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.tmpl")
}

// Static — файловая система со статикой (корень — каталог static).
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// каталог встроен на этапе компиляции
		panic(err)
	}
	return sub
}
