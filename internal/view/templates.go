package view

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl assets/*.css assets/*.js
var embedded embed.FS

// Templates exposes the page shell templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return embedded
	}
	return sub
}

// Assets exposes the editor stylesheet and client script for mounting under
// a static file handler:
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(view.Assets())))
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}
