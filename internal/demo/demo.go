// Package demo provides the showcase site the blizzard CLI serves,
// builds and publishes. It doubles as living documentation for the
// element and attribute API.
package demo

import (
	"github.com/blizzard-html/blizzard/pkg/html"
	"github.com/blizzard-html/blizzard/pkg/site"
)

// Site returns the showcase site.
func Site() *site.Site {
	s := site.New()
	s.MustAdd(site.Page{Path: "/", Title: "Home", Render: homePage})
	s.MustAdd(site.Page{Path: "/elements", Title: "Elements", Render: elementsPage})
	s.MustAdd(site.Page{Path: "/form", Title: "Form", Render: formPage})
	return s
}

// layout wraps page content in the shared document shell.
func layout(title string, content ...*html.Node) *html.Node {
	return html.Document(
		html.Html(html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.Title(html.Text(title)),
			),
			html.Body(
				html.Header(
					html.Nav(
						html.A(html.Href("/"), html.Text("Home")),
						html.A(html.Href("/elements"), html.Text("Elements")),
						html.A(html.Href("/form"), html.Text("Form")),
					),
				),
				html.Main(content),
				html.Footer(html.Small(html.Text("Built with blizzard"))),
			),
		),
	)
}

func homePage() *html.Node {
	return layout("blizzard",
		html.H1(html.Text("blizzard")),
		html.P(
			html.Text("Build HTML trees with plain Go function calls, then render them to a minified string."),
		),
		html.Pre(html.Code(html.Text(`render.String(html.Button(html.Type("submit"), html.Text("Log in")))`))),
	)
}

type showcase struct {
	name string
	node *html.Node
}

func elementsPage() *html.Node {
	shows := []showcase{
		{"blockquote", html.Blockquote(html.Cite(html.Text("a quote")))},
		{"table", html.Table(
			html.Thead(html.Tr(html.Th(html.Text("tag")), html.Th(html.Text("kind")))),
			html.Tbody(
				html.Tr(html.Td(html.Text("br")), html.Td(html.Text("leaf"))),
				html.Tr(html.Td(html.Text("div")), html.Td(html.Text("parent"))),
			),
		)},
		{"figure", html.Figure(
			html.Img(html.Src("/gopher.png"), html.Alt("gopher"), html.Width(120), html.Height(120)),
			html.Figcaption(html.Text("A leaf element inside a parent.")),
		)},
		{"details", html.Details(html.Open(),
			html.Summary(html.Text("Boolean attributes")),
			html.P(html.Text("Present as a bare name, or absent entirely.")),
		)},
	}

	return layout("Elements",
		html.H1(html.Text("Element gallery")),
		html.Dl(
			html.Range(shows, func(s showcase, _ int) *html.Node {
				return html.Div(
					html.Dt(html.Code(html.Text(s.name))),
					html.Dd(s.node),
				)
			}),
		),
	)
}

func formPage() *html.Node {
	return layout("Form",
		html.H1(html.Text("Log in")),
		html.Form(html.Action("/login"), html.Method("post"),
			html.Fieldset(
				html.Legend(html.Text("Credentials")),
				html.Label(html.For("email"), html.Text("Email")),
				html.Input(html.Type("email"), html.ID("email"), html.Name("email"), html.Required()),
				html.Label(html.For("password"), html.Text("Password")),
				html.Input(html.Type("password"), html.ID("password"), html.Name("password"), html.Required(), html.MinLength(8)),
				html.Label(
					html.Input(html.Type("checkbox"), html.Name("remember"), html.Checked()),
					html.Text("Remember me"),
				),
			),
			html.Button(html.Type("submit"), html.Text("Log in")),
		),
	)
}
