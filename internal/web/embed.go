package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static
	staticFiles embed.FS

	//go:embed templates
	templateFiles embed.FS
)

// subFS returns the embedded directory dir as an http file system rooted at dir.
func subFS(files embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a compile time constant embedded above
		panic(err)
	}

	return http.FS(sub)
}
