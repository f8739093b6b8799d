package render

import (
	"io"

	"sarkari-engine/internal/domain"
)

// PageData feeds the full-page shell: persisted theme plus the category
// taxonomy with counts over the loaded collection.
type PageData struct {
	Theme      string
	Categories []domain.CategoryCount
}

// WritePage renders the UI shell. Fragments are pulled by the page script.
func WritePage(w io.Writer, data PageData) error {
	return tmpl.ExecuteTemplate(w, "page.tmpl", data)
}
