package quality

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/paradize/restodocs/internal/common"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// checkerboard produces a maximally sharp image with the given two levels.
func checkerboard(w, h int, lo, hi uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := lo
			if (x+y)%2 == 0 {
				v = hi
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func uniform(w, h int, level uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return img
}

func TestValidate(t *testing.T) {
	gate := NewGate(common.QualityConfig{})

	tests := []struct {
		name      string
		img       image.Image
		wantGood  bool
		wantIssue string
	}{
		{"sharp document passes", checkerboard(600, 600, 30, 220), true, ""},
		{"flat image is blurry", uniform(600, 600, 128), false, "blurry"},
		{"dark image rejected", uniform(600, 600, 10), false, "too dark"},
		{"blown-out image rejected", uniform(600, 600, 255), false, "too bright"},
		{"tiny image rejected", checkerboard(80, 80, 30, 220), false, "resolution too low"},
		// narrow receipt photos are admitted as long as both floors hold
		{"narrow receipt passes", checkerboard(500, 1400, 30, 220), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := gate.Validate(encodePNG(t, tt.img))
			if rep.IsGood != tt.wantGood {
				t.Fatalf("IsGood = %v, want %v (issues: %v)", rep.IsGood, tt.wantGood, rep.Issues)
			}
			if tt.wantIssue == "" {
				return
			}
			found := false
			for _, issue := range rep.Issues {
				if strings.Contains(issue, tt.wantIssue) {
					found = true
				}
			}
			if !found {
				t.Fatalf("issues %v do not mention %q", rep.Issues, tt.wantIssue)
			}
		})
	}
}

func TestValidateUndecodable(t *testing.T) {
	gate := NewGate(common.QualityConfig{})
	rep := gate.Validate([]byte("not an image"))
	if rep.IsGood {
		t.Fatal("garbage bytes must not pass the gate")
	}
	if len(rep.Issues) == 0 {
		t.Fatal("expected a decode issue")
	}
}

func TestValidateReportsAllFailures(t *testing.T) {
	gate := NewGate(common.QualityConfig{})
	// small, flat, and dark at once: every independent check must speak up
	rep := gate.Validate(encodePNG(t, uniform(100, 100, 5)))
	if rep.IsGood {
		t.Fatal("expected rejection")
	}
	if len(rep.Issues) < 3 {
		t.Fatalf("expected 3 independent issues, got %v", rep.Issues)
	}
}
