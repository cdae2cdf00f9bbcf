package routes

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

var sitemapTmpl = template.Must(template.New("sitemap").Parse(`<div style="text-align: center;">
<h1>Star Wars API</h1>
<p>Available endpoints:</p>
<ul style="text-align: left;">
{{- range .Links}}
<li><a href="{{.}}">{{.}}</a></li>
{{- end}}
</ul>
<p>Endpoints with parameters:</p>
<ul style="text-align: left;">
{{- range .Others}}
<li>{{.}}</li>
{{- end}}
</ul>
</div>`))

type sitemapPage struct {
	Links  []string
	Others []string
}

// sitemap lists the registered routes. Parameterless GET routes become links.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page sitemapPage
		for _, route := range r.Routes() {
			if route.Path == "/" {
				continue
			}
			if route.Method == http.MethodGet && !strings.Contains(route.Path, ":") {
				page.Links = append(page.Links, route.Path)
				continue
			}
			page.Others = append(page.Others, route.Method+" "+route.Path)
		}
		sort.Strings(page.Links)
		sort.Strings(page.Others)

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := sitemapTmpl.Execute(c.Writer, page); err != nil {
			c.Error(err)
		}
	}
}
