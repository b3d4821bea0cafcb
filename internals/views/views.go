// Package views holds the embedded HTML templates of the dashboard.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gofiber/template/html/v2"

	"coachingku_backend/internals/page"
	"coachingku_backend/internals/tabular"
)

//go:embed templates/*.html
var templates embed.FS

// Engine returns a fiber view engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

func Funcs() map[string]interface{} {
	return map[string]interface{}{
		"cell":       tabular.String,
		"chartURL":   ChartURL,
		"levelClass": levelClass,
		"fieldValue": fieldValue,
	}
}

// ChartURL points at the PNG of chartKey with the page's current filters, minus the
// one-shot notice/error params.
func ChartURL(pageKey, chartKey string, query map[string]string) string {
	path := "/api/pages/" + url.PathEscape(pageKey) + "/charts/" + url.PathEscape(chartKey) + ".png"
	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "notice" || k == "error" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return path
	}
	sort.Strings(keys)
	v := url.Values{}
	for _, k := range keys {
		v.Set(k, query[k])
	}
	return path + "?" + v.Encode()
}

func levelClass(l page.Level) string {
	switch l {
	case page.LevelSuccess:
		return "msg ok"
	case page.LevelWarning:
		return "msg warn"
	case page.LevelError:
		return "msg err"
	default:
		return "msg info"
	}
}

func fieldValue(f page.Field) string {
	return strings.TrimSpace(f.Default)
}
