// Package sitemap serves /sitemap.xml built from the static pages and
// saved blog slugs.
package sitemap

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soez-labs/blogforge/internal/modules/content"
)

func RegisterRoutes(r gin.IRoutes, siteURL string, store content.Store) {
	render := func(c *gin.Context) {
		xml, err := build(siteURL, store)
		if err != nil {
			c.String(500, "error generating sitemap")
			return
		}
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.String(200, xml)
	}
	r.GET("/sitemap.xml", render)
	r.GET("/sitemap", render)
}

type sitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

func build(base string, store content.Store) (string, error) {
	urls := []sitemapURL{
		{Loc: base, LastMod: time.Now(), ChangeFreq: "daily", Priority: 1.0},
		{Loc: base + "/login", LastMod: time.Now(), ChangeFreq: "monthly", Priority: 0.3},
	}

	blogs, err := store.ListSlugs()
	if err != nil {
		return "", err
	}
	for _, b := range blogs {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", base, b.Slug),
			LastMod:    b.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}
	return renderXML(urls), nil
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func renderXML(urls []sitemapURL) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)
	for _, u := range urls {
		fmt.Fprintf(&b, `  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, xmlEscaper.Replace(u.Loc), u.LastMod.Format("2006-01-02"), u.ChangeFreq, u.Priority)
	}
	b.WriteString(`</urlset>`)
	return b.String()
}
