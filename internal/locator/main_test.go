package locator

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/testutil"
)

func fixture(t *testing.T) config.Config {
	dir := t.TempDir()
	name := "VIIRS_2022_LightPollut_"

	testutil.WriteKMZ(t, filepath.Join(dir, "light.kmz"), map[string][]byte{
		"doc.kml": testutil.Document([]testutil.Overlay{
			{Name: name + "a.png", DrawOrder: 1, North: 52.4, South: 52.3, East: 5.0, West: 4.8},
			{Name: name + "b.png", DrawOrder: 2, North: 52.4, South: 52.3, East: 5.2, West: 5.0},
		}),
		"files/" + name + "a.png": testutil.PNG(t, 2, 2, color.White),
		"files/" + name + "b.png": testutil.PNG(t, 2, 2, color.White),
	})

	cfg := config.Default()
	cfg.Archive = filepath.Join(dir, "light.kmz")
	cfg.Cache = filepath.Join(dir, config.DefaultCache)
	return cfg
}

func TestRun(t *testing.T) {
	cfg := fixture(t)

	record, found, err := Run(cfg, 52.35, 5.0)

	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, "b", record.ID)
}

func TestRun_notFoundIsNoError(t *testing.T) {
	cfg := fixture(t)

	_, found, err := Run(cfg, 60.0, 4.9)

	testutil.AssertNil(t, err)
	testutil.AssertFalse(t, found)
}

func TestRun_coordinateOutOfRangeIsNotFound(t *testing.T) {
	cfg := fixture(t)

	_, found, err := Run(cfg, 91, 4.9)

	testutil.AssertNil(t, err)
	testutil.AssertFalse(t, found)
}
