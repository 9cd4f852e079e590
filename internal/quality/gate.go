// Package quality rejects unusable photos before they reach the vision
// model. Recognition calls are the most expensive step of the pipeline, so
// anything blurry, under/over-exposed, or too small is short-circuited here.
package quality

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/paradize/restodocs/internal/common"
)

// Report is the gate verdict for one image. Issues is human-readable and
// surfaced to the uploader as retake guidance.
type Report struct {
	IsGood bool
	Issues []string
	Width  int
	Height int
}

// Gate checks image bytes against fixed thresholds. Pure: no side effects,
// no external calls. Orientation is deliberately not checked — vertical
// photos of receipts and acts are legitimate.
type Gate struct {
	cfg common.QualityConfig
}

func NewGate(cfg common.QualityConfig) *Gate {
	if cfg.MinSharpness <= 0 {
		cfg.MinSharpness = 60.0
	}
	if cfg.MinBrightness <= 0 {
		cfg.MinBrightness = 40.0
	}
	if cfg.MaxBrightness <= 0 {
		// wide on the bright end: scanned documents are near-white
		cfg.MaxBrightness = 245.0
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = 500
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = 500
	}
	return &Gate{cfg: cfg}
}

// Validate decodes the image and runs all checks. The checks are
// independent; every failure is reported, not just the first.
func (g *Gate) Validate(data []byte) Report {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Report{Issues: []string{fmt.Sprintf("image is not decodable: %v", err)}}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rep := Report{Width: w, Height: h}

	if w < g.cfg.MinWidth || h < g.cfg.MinHeight {
		rep.Issues = append(rep.Issues,
			fmt.Sprintf("resolution too low: %dx%d (need at least %dx%d)", w, h, g.cfg.MinWidth, g.cfg.MinHeight))
	}

	luma := grayscale(img)

	brightness := mean(luma)
	if brightness < g.cfg.MinBrightness {
		rep.Issues = append(rep.Issues,
			fmt.Sprintf("image too dark: mean brightness %.1f (floor %.1f)", brightness, g.cfg.MinBrightness))
	} else if brightness > g.cfg.MaxBrightness {
		rep.Issues = append(rep.Issues,
			fmt.Sprintf("image too bright: mean brightness %.1f (ceiling %.1f)", brightness, g.cfg.MaxBrightness))
	}

	sharpness := laplacianVariance(luma, w, h)
	if sharpness < g.cfg.MinSharpness {
		rep.Issues = append(rep.Issues,
			fmt.Sprintf("image too blurry: sharpness %.1f (floor %.1f)", sharpness, g.cfg.MinSharpness))
	}

	rep.IsGood = len(rep.Issues) == 0
	return rep
}

// grayscale flattens the image into a row-major luma plane (0..255).
func grayscale(img image.Image) []float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	luma := make([]float64, w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// ITU-R BT.601 weights; RGBA returns 16-bit channels
			luma[i] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
			i++
		}
	}
	return luma
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// laplacianVariance applies a 4-neighbor Laplacian and returns the variance
// of the response. Sharp edges produce a wide response distribution; a
// defocused photo collapses toward zero.
func laplacianVariance(luma []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 0
	}
	resp := make([]float64, 0, (w-2)*(h-2))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := luma[y*w+x]
			v := 4*c - luma[(y-1)*w+x] - luma[(y+1)*w+x] - luma[y*w+x-1] - luma[y*w+x+1]
			resp = append(resp, v)
		}
	}
	m := mean(resp)
	var variance float64
	for _, v := range resp {
		d := v - m
		variance += d * d
	}
	return variance / float64(len(resp))
}
