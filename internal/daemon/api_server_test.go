package daemon_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"strings"
	"testing"

	"stemsync/internal/api"
	"stemsync/internal/testsupport"
)

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestAPIStatusEndpoint(t *testing.T) {
	d := startDaemon(t)
	base := "http://" + d.Status().APIAddress

	resp, body := get(t, base+"/api/status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", resp.StatusCode)
	}
	var payload api.StudioStatus
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if payload.State != "idle" || payload.Credits != 3 {
		t.Fatalf("unexpected status payload: %+v", payload)
	}
}

func TestAPIProjectEndpoint(t *testing.T) {
	d := startDaemon(t)
	base := "http://" + d.Status().APIAddress

	resp, body := get(t, base+"/api/project")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 with no project, got %d", resp.StatusCode)
	}
	var apiErr api.Error
	if err := json.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if apiErr.Kind != api.KindNoActiveProject {
		t.Fatalf("unexpected error kind %q", apiErr.Kind)
	}

	source := testsupport.WriteAudioFile(t, "track.mp3")
	if _, err := d.Upload(context.Background(), source); err != nil {
		t.Fatalf("upload: %v", err)
	}

	resp, body = get(t, base+"/api/project")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", resp.StatusCode)
	}
	var project api.Project
	if err := json.Unmarshal(body, &project); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if project.Title != "track" || len(project.Stems) != 4 {
		t.Fatalf("unexpected project payload: %+v", project)
	}
}

func TestAPIFrameEndpoints(t *testing.T) {
	d := startDaemon(t)
	base := "http://" + d.Status().APIAddress

	resp, body := get(t, base+"/api/frame")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", resp.StatusCode)
	}
	page := string(body)
	if !strings.Contains(page, `property="fc:frame"`) {
		t.Fatalf("missing frame meta in %q", page)
	}
	if !strings.Contains(page, "Start Remixing") {
		t.Fatal("expected default card button")
	}

	payload := bytes.NewBufferString(`{"untrustedData":{"buttonIndex":1}}`)
	postResp, err := http.Post(base+"/api/frame", "application/json", payload)
	if err != nil {
		t.Fatalf("POST frame: %v", err)
	}
	postBody, _ := io.ReadAll(postResp.Body)
	postResp.Body.Close()
	if postResp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", postResp.StatusCode)
	}
	if !strings.Contains(string(postBody), "Upload Audio") {
		t.Fatal("expected upload card after button press")
	}
}

func TestAPIOGEndpoint(t *testing.T) {
	d := startDaemon(t)
	base := "http://" + d.Status().APIAddress

	resp, body := get(t, base+"/api/og")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("unexpected content type %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 630 {
		t.Fatalf("unexpected dimensions %v", img.Bounds())
	}
}
