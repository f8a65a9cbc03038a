package frame_test

import (
	"strings"
	"testing"

	"stemsync/internal/frame"
)

const baseURL = "https://studio.example"

func TestDefaultDocument(t *testing.T) {
	doc := frame.Default(baseURL + "/")
	if doc.Version != frame.Version {
		t.Fatalf("version = %q", doc.Version)
	}
	if doc.ImageURL != baseURL+"/api/og" {
		t.Fatalf("image url = %q", doc.ImageURL)
	}
	if len(doc.Buttons) != 1 || doc.Buttons[0] != "Start Remixing" {
		t.Fatalf("buttons = %v", doc.Buttons)
	}
	if doc.PostURL != baseURL+"/api/frame" {
		t.Fatalf("post url = %q", doc.PostURL)
	}
}

func TestStartDocument(t *testing.T) {
	doc := frame.Start(baseURL)
	if len(doc.Buttons) != 2 || doc.Buttons[0] != "Upload Audio" || doc.Buttons[1] != "Browse Library" {
		t.Fatalf("buttons = %v", doc.Buttons)
	}
	if doc.ImageURL != baseURL+"/api/og/upload" {
		t.Fatalf("image url = %q", doc.ImageURL)
	}
	if doc.PostURL != baseURL+"/api/frame/upload" {
		t.Fatalf("post url = %q", doc.PostURL)
	}
}

func TestRespondButtonMapping(t *testing.T) {
	if doc := frame.Respond(baseURL, 1); doc.PostURL != baseURL+"/api/frame/upload" {
		t.Fatalf("button 1 should advance to the start card, got %q", doc.PostURL)
	}
	// Unrecognized indices fall back to the default card.
	for _, index := range []int{0, 2, -1, 99} {
		doc := frame.Respond(baseURL, index)
		if doc.PostURL != baseURL+"/api/frame" {
			t.Fatalf("button %d should fall back to default, got %q", index, doc.PostURL)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	rendered := frame.Start(baseURL).RenderHTML()
	for _, fragment := range []string{
		`<meta property="fc:frame" content="vNext" />`,
		`<meta property="fc:frame:image" content="` + baseURL + `/api/og/upload" />`,
		`<meta property="fc:frame:button:1" content="Upload Audio" />`,
		`<meta property="fc:frame:button:2" content="Browse Library" />`,
		`<meta property="fc:frame:post_url" content="` + baseURL + `/api/frame/upload" />`,
		"Upload your audio file to start remixing!",
	} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("rendered document missing %q:\n%s", fragment, rendered)
		}
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	doc := frame.Document{Version: frame.Version, Body: `<script>alert("x")</script>`}
	rendered := doc.RenderHTML()
	if strings.Contains(rendered, "<script>") {
		t.Fatal("body must be escaped")
	}
}
