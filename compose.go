package mdpaper

import (
	"fmt"
	"strings"
)

// defaultFontFamily is the standard font stack for rendered documents.
const defaultFontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// monoFontFamily is the font stack for code blocks and inline code.
const monoFontFamily = `'SF Mono', 'Fira Code', Consolas, Menlo, monospace`

// documentTemplate wraps the Markdown-derived body in a complete HTML5
// document. Placeholders: stylesheet, body.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>`

// htmlComposer abstracts wrapping an HTML fragment in the print template.
type htmlComposer interface {
	Compose(body string, format Format) string
}

// printComposer builds the print stylesheet for a paper format and embeds
// the document body. Styling depends only on the format, never on content.
type printComposer struct{}

// Compose returns a complete HTML document for the given body and format.
func (printComposer) Compose(body string, format Format) string {
	var css strings.Builder
	css.WriteString(buildPageCSS(format))
	css.WriteString(buildPageBreaksCSS())
	css.WriteString(buildTypographyCSS(format))
	css.WriteString(buildCodeCSS(format))
	css.WriteString(buildTableCSS(format))
	css.WriteString(buildImageCSS())
	css.WriteString(buildBlockquoteCSS())
	return fmt.Sprintf(documentTemplate, css.String(), body)
}

// buildPageCSS generates the @page directive. Chrome is asked to prefer
// this over the explicit print parameters, so it is the source of truth
// for page geometry.
func buildPageCSS(f Format) string {
	return fmt.Sprintf(`/* Page geometry */
@page {
  size: %s portrait;
  margin: %s;
}
`, f.Name, f.Margin)
}

// buildPageBreaksCSS generates page break control rules: no break right
// after a heading, a fresh page before every top-level heading except the
// first element, and no breaks inside blocks that read poorly when split.
func buildPageBreaksCSS() string {
	return `
/* Page breaks */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
}
h1 {
  break-before: page;
  page-break-before: always;
}
body > h1:first-child {
  break-before: auto;
  page-break-before: auto;
}
pre, blockquote, table, img {
  break-inside: avoid;
  page-break-inside: avoid;
}
`
}

// buildTypographyCSS generates body and heading typography. The base size
// scales per format; headings decrease from h1 to h6.
func buildTypographyCSS(f Format) string {
	return fmt.Sprintf(`
/* Typography */
body {
  font-family: %s;
  font-size: %s;
  line-height: 1.6;
  color: #24292e;
}
h1 { font-size: 2em; border-bottom: 1px solid #eaecef; padding-bottom: 0.3em; }
h2 { font-size: 1.6em; }
h3 { font-size: 1.3em; }
h4 { font-size: 1.1em; }
h5 { font-size: 1em; }
h6 { font-size: 0.9em; color: #6a737d; }
`, defaultFontFamily, f.FontSize)
}

// buildCodeCSS generates code block and inline code styling. Compact
// formats use a smaller code font so blocks fit the narrower page.
func buildCodeCSS(f Format) string {
	size := "0.85em"
	if f.Compact {
		size = "0.75em"
	}
	return fmt.Sprintf(`
/* Code */
pre, code {
  font-family: %s;
  font-size: %s;
  background-color: #f6f8fa;
}
pre {
  /* chroma sets an inline background on pre for highlighted blocks. */
  background-color: #f6f8fa !important;
  padding: 12px;
  border-radius: 4px;
  overflow-x: auto;
}
code {
  padding: 0.2em 0.4em;
  border-radius: 3px;
}
pre code {
  padding: 0;
}
`, monoFontFamily, size)
}

// buildTableCSS generates table styling: bordered cells, highlighted
// header row, zebra rows. Compact formats use a smaller table font.
func buildTableCSS(f Format) string {
	size := "0.9em"
	if f.Compact {
		size = "0.8em"
	}
	return fmt.Sprintf(`
/* Tables */
table {
  border-collapse: collapse;
  width: 100%%;
  font-size: %s;
}
th, td {
  border: 1px solid #dfe2e5;
  padding: 6px 13px;
}
th {
  background-color: #f1f8ff;
  font-weight: 600;
}
tr:nth-child(even) {
  background-color: #f6f8fa;
}
`, size)
}

// buildImageCSS generates bounded-width image styling with a decorative
// border and shadow.
func buildImageCSS() string {
	return `
/* Images */
img {
  max-width: 90%;
  display: block;
  margin: 1em auto;
  border: 1px solid #dfe2e5;
  border-radius: 4px;
  box-shadow: 0 2px 6px rgba(0, 0, 0, 0.15);
}
`
}

// buildBlockquoteCSS generates blockquote styling with a left accent
// border and tinted background.
func buildBlockquoteCSS() string {
	return `
/* Blockquotes */
blockquote {
  margin: 1em 0;
  padding: 0.5em 1em;
  border-left: 4px solid #0366d6;
  background-color: #f1f8ff;
  color: #4a5560;
}
`
}
