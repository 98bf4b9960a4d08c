package render

import (
	"testing"

	"github.com/blizzard-html/blizzard/pkg/html"
)

func benchPage(rows int) *html.Node {
	return html.Document(
		html.Html(html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Title(html.Text("Benchmark")),
			),
			html.Body(
				html.Table(html.Class("data"),
					html.Tbody(
						html.Repeat(rows, func(i int) *html.Node {
							return html.Tr(
								html.Td(html.Textf("row %d", i)),
								html.Td(html.A(html.Href("/row"), html.Text("open"))),
							)
						}),
					),
				),
			),
		),
	)
}

func BenchmarkRenderSmallPage(b *testing.B) {
	page := benchPage(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = String(page)
	}
}

func BenchmarkRenderLargePage(b *testing.B) {
	page := benchPage(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = String(page)
	}
}

func BenchmarkRenderDeepTree(b *testing.B) {
	node := html.Text("bottom")
	for i := 0; i < 500; i++ {
		node = html.Div(node)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = String(node)
	}
}
