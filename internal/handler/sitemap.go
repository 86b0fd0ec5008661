// File: internal/handler/sitemap.go
package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

var sitemapTmpl = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars API</title></head>
<body>
<div style="text-align: center;">
<h1>Star Wars API</h1>
<p>Available endpoints:</p>
<ul style="text-align: left; display: inline-block;">
{{- range .}}
<li><a href="{{.}}">{{.}}</a></li>
{{- end}}
</ul>
</div>
</body>
</html>
`))

// sitemapLinks 只列出不帶路徑參數的 GET 路由
func sitemapLinks(routes []*echo.Route) []string {
	seen := map[string]bool{}
	links := []string{}
	for _, r := range routes {
		if r.Method != http.MethodGet || strings.ContainsAny(r.Path, ":*") || seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		links = append(links, r.Path)
	}
	sort.Strings(links)
	return links
}

// SitemapHandler 以 HTML 列出所有可用端點，僅供除錯使用
// @Summary     Sitemap
// @Tags        health
// @Produce     html
// @Success     200 {string} string "HTML"
// @Router      / [get]
func SitemapHandler(e *echo.Echo) echo.HandlerFunc {
	return func(c echo.Context) error {
		var buf bytes.Buffer
		if err := sitemapTmpl.Execute(&buf, sitemapLinks(e.Routes())); err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	}
}
