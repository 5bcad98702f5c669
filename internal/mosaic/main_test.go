package mosaic

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/metajson"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/testutil"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
)

const prefix = "VIIRS_2022_LightPollut_"

func fixture(t *testing.T) config.Config {
	dir := t.TempDir()
	red := color.RGBA{255, 0, 0, 255}

	overlays := []testutil.Overlay{
		{Name: prefix + "r1c1.png", DrawOrder: 4, North: 52.3, South: 52.2, East: 5.2, West: 5.0},
		{Name: prefix + "r0c0.png", DrawOrder: 1, North: 52.4, South: 52.3, East: 5.0, West: 4.8},
		{Name: prefix + "r1c0.png", DrawOrder: 3, North: 52.3, South: 52.2, East: 5.0, West: 4.8},
		{Name: prefix + "r0c1.png", DrawOrder: 2, North: 52.4, South: 52.3, East: 5.2, West: 5.0},
	}
	testutil.WriteKMZ(t, filepath.Join(dir, "light.kmz"), map[string][]byte{
		"doc.kml":                     testutil.Document(overlays),
		"files/" + prefix + "r0c0.png": testutil.PNG(t, 8, 6, red),
		"files/" + prefix + "r0c1.png": testutil.PNG(t, 8, 6, color.White),
		"files/" + prefix + "r1c0.png": testutil.PNG(t, 8, 4, color.White),
		"files/" + prefix + "r1c1.png": testutil.PNG(t, 8, 4, red),
	})

	cfg := config.Default()
	cfg.WorkDir = dir
	cfg.Cache = filepath.Join(dir, config.DefaultCache)
	return cfg
}

func TestRun(t *testing.T) {
	// Arrange
	cfg := fixture(t)
	out := filepath.Join(cfg.WorkDir, "map.png")
	meta := filepath.Join(cfg.WorkDir, "map.json")
	previewPath := filepath.Join(cfg.WorkDir, "preview.png")

	// Act
	err := Run(cfg, Options{Out: out, Quality: 90, Policy: FailOnMismatch, Preview: previewPath, PreviewHeight: 5, Meta: meta})

	// Assert
	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, utils.IsFile(cfg.Cache))

	f, err := os.Open(out)
	testutil.AssertNil(t, err)
	defer f.Close()
	img, format, err := image.Decode(f)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, "png", format)
	testutil.AssertEqual(t, image.Rect(0, 0, 16, 10), img.Bounds())

	// r0c0 is red and sits top left, r1c1 is red and sits bottom right
	r, g, _, _ := img.At(0, 0).RGBA()
	testutil.AssertEqual(t, uint32(0xffff), r)
	testutil.AssertEqual(t, uint32(0), g)
	_, g, _, _ = img.At(15, 0).RGBA()
	testutil.AssertEqual(t, uint32(0xffff), g)
	_, g, _, _ = img.At(15, 9).RGBA()
	testutil.AssertEqual(t, uint32(0), g)

	m, err := metajson.Read(meta)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, 4, m.TileCount)
	testutil.AssertEqual(t, []string{"r0c0", "r0c1"}, m.Rows[0].Tiles)
	testutil.AssertEqual(t, "fail", m.Policy)

	testutil.AssertTrue(t, utils.IsFile(previewPath))
}

func TestRun_missingOutputDirectory(t *testing.T) {
	cfg := fixture(t)

	err := Run(cfg, Options{Out: filepath.Join(cfg.WorkDir, "nope", "map.jpg"), Quality: 90})

	testutil.AssertNotNil(t, err)
	testutil.AssertFalse(t, utils.IsFile(cfg.Cache))
}
