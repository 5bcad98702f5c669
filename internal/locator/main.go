package locator

import (
	"time"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/pipeline"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
	"github.com/paulmach/orb"
)

// Run is the locate command's entrypoint. A point outside of all tiles, or outside of the
// valid coordinate range, is reported; it's not an error.
func Run(cfg config.Config, lat, lon float64) (tile.Record, bool, error) {
	start := time.Now()

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		sigolo.Infof("ℹ️  No tile contains %f, %f, it's outside of ±90 latitude and ±180 longitude", lat, lon)
		return tile.Record{}, false, nil
	}

	job, err := pipeline.Open(cfg)
	if err != nil {
		return tile.Record{}, false, err
	}
	defer job.Close()

	record, found := Locate(job.Matrix, orb.Point{lon, lat})
	if !found {
		sigolo.Infof("ℹ️  No tile contains %f, %f", lat, lon)
	} else {
		sigolo.Infof("ℹ️  %f, %f is in tile '%s' (%s): north %v, south %v, east %v, west %v",
			lat, lon, record.ID, record.Image, record.North, record.South, record.East, record.West)
	}

	sigolo.Infof("\n    🎉  Finished in %s", time.Since(start).String())
	return record, found, nil
}
