package handler

import (
	"bytes"
	htmlstd "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML(), html.WithUnsafe()),
	)
	contentSanitizer = buildContentSanitizer()
	plainText        = bluemonday.StrictPolicy()
)

// renderMarkdown converts article markdown to sanitized HTML.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(applyVideoEmbeds(content)), &buf); err != nil {
		return "", err
	}
	return string(contentSanitizer.SanitizeBytes(buf.Bytes())), nil
}

// stripTags removes all markup from public free text. Entities produced by
// the sanitizer are decoded again since the result is stored as plain text.
func stripTags(value string) string {
	return strings.TrimSpace(htmlstd.UnescapeString(plainText.Sanitize(value)))
}
