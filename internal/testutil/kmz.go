package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"
)

// Overlay is a GroundOverlay of a test document
type Overlay struct {
	Name                     string
	DrawOrder                int
	North, South, East, West float64
}

// Document renders a KML document with the given overlays
func Document(overlays []Overlay) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<kml xmlns="http://www.opengis.net/kml/2.2"><Document>` + "\n")
	for _, o := range overlays {
		fmt.Fprintf(&b, "<GroundOverlay><name>%s</name><drawOrder>%d</drawOrder>"+
			"<LatLonBox><north>%v</north><south>%v</south><east>%v</east><west>%v</west><rotation>0</rotation></LatLonBox>"+
			"</GroundOverlay>\n", o.Name, o.DrawOrder, o.North, o.South, o.East, o.West)
	}
	b.WriteString("</Document></kml>\n")
	return []byte(b.String())
}

// PNG encodes a solid image of the given size
func PNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// WriteKMZ writes a zip archive with the given entries
func WriteKMZ(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	w := zip.NewWriter(f)
	for name, content := range entries {
		ew, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = ew.Write(content); err != nil {
			t.Fatal(err)
		}
	}

	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
}
