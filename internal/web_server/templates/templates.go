// html шаблоны веб-интерфейса (встраиваются в бинарник)
package templates

import (
	"embed"
	"fmt"
	"html/template"
)

// имя шаблона страницы поиска
const SearchPage = "search_page"

//go:embed *.html
var files embed.FS

// разбор всех встроенных шаблонов
func Load() (*template.Template, error) {
	tmpl, err := template.ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
