package markdownx

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func ToHTML(content []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	// 不启用 Smartypants，否则 f' / f" 中的引号会被替换成弯引号
	htmlFlags := html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return wrapClass(string(markdown.Render(doc, renderer)))
}

var FullMatchHtmlTagClassMap = map[string]string{
	"table": "fprim-table",
	"thead": "fprim-table-head",
	"tbody": "fprim-table-body",
}

// wrapClass 为 markdown 转换成的 html 中的表格标签添加 css 类，方便嵌入其他页面
func wrapClass(htmlContent string) string {
	for tagName, class := range FullMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	return htmlContent
}
