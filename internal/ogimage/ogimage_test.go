package ogimage_test

import (
	"bytes"
	"image/png"
	"math/rand"
	"testing"

	"stemsync/internal/ogimage"
)

func TestEncodePNGDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := ogimage.EncodePNG(&buf, 42); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != ogimage.Width || bounds.Dy() != ogimage.Height {
		t.Fatalf("unexpected dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	var first, second bytes.Buffer
	if err := ogimage.EncodePNG(&first, 7); err != nil {
		t.Fatalf("encode first: %v", err)
	}
	if err := ogimage.EncodePNG(&second, 7); err != nil {
		t.Fatalf("encode second: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("same seed produced different images")
	}

	var other bytes.Buffer
	if err := ogimage.EncodePNG(&other, 8); err != nil {
		t.Fatalf("encode other: %v", err)
	}
	if bytes.Equal(first.Bytes(), other.Bytes()) {
		t.Fatal("different seeds produced identical images")
	}
}

func TestGenerateBackgroundGradient(t *testing.T) {
	img := ogimage.Generate(rand.New(rand.NewSource(1)))
	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, ogimage.Height-1)
	if top == bottom {
		t.Fatalf("expected gradient, got uniform corner color %v", top)
	}
}
