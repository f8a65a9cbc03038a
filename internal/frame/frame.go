package frame

import (
	"html"
	"strconv"
	"strings"
)

// Version is the frame protocol marker stamped on every document.
const Version = "vNext"

// Document is one renderable frame card.
type Document struct {
	Version  string
	ImageURL string
	Buttons  []string
	PostURL  string
	Body     string
}

// Default returns the landing card shown before any interaction.
func Default(baseURL string) Document {
	base := strings.TrimRight(baseURL, "/")
	return Document{
		Version:  Version,
		ImageURL: base + "/api/og",
		Buttons:  []string{"Start Remixing"},
		PostURL:  base + "/api/frame",
		Body:     "Welcome to Stemsync Studio!",
	}
}

// Start returns the upload card shown after the user chooses to remix.
func Start(baseURL string) Document {
	base := strings.TrimRight(baseURL, "/")
	return Document{
		Version:  Version,
		ImageURL: base + "/api/og/upload",
		Buttons:  []string{"Upload Audio", "Browse Library"},
		PostURL:  base + "/api/frame/upload",
		Body:     "Upload your audio file to start remixing!",
	}
}

// Respond maps a pressed button index onto the next document. Button 1 on
// the default card advances to the start card; anything unrecognized falls
// back to the default card.
func Respond(baseURL string, buttonIndex int) Document {
	if buttonIndex == 1 {
		return Start(baseURL)
	}
	return Default(baseURL)
}

// RenderHTML emits the document as an fc:frame meta page.
func (d Document) RenderHTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n  <head>\n")
	writeMeta(&b, "fc:frame", d.Version)
	writeMeta(&b, "fc:frame:image", d.ImageURL)
	for i, label := range d.Buttons {
		writeMeta(&b, "fc:frame:button:"+strconv.Itoa(i+1), label)
	}
	writeMeta(&b, "fc:frame:post_url", d.PostURL)
	b.WriteString("  </head>\n  <body>\n    <p>")
	b.WriteString(html.EscapeString(d.Body))
	b.WriteString("</p>\n  </body>\n</html>\n")
	return b.String()
}

func writeMeta(b *strings.Builder, property, content string) {
	b.WriteString(`    <meta property="`)
	b.WriteString(html.EscapeString(property))
	b.WriteString(`" content="`)
	b.WriteString(html.EscapeString(content))
	b.WriteString("\" />\n")
}
