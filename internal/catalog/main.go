package catalog

import (
	"time"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/index"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/pipeline"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/validate"
)

// Run is the index command's entrypoint. It materializes the tile index cache (or, with
// force, rebuilds it from the overlay document) and reports the grid it yields.
func Run(cfg config.Config, force bool) (grid.Matrix, error) {
	var timer time.Time
	start := time.Now()

	archive, err := pipeline.OpenArchive(cfg)
	if err != nil {
		return grid.Matrix{}, err
	}
	job := &pipeline.Job{Config: cfg, Archive: archive}
	defer job.Close()

	err = validate.ImageFolder(archive, cfg.ImageFolder)
	if err != nil {
		sigolo.Warnf("%s", err.Error())
	}

	timer = time.Now()
	if force || !utils.IsFile(cfg.Cache) {
		err = validate.Document(archive, cfg.Document)
		if err != nil {
			return grid.Matrix{}, err
		}
		sigolo.Infof("✔️  Validated archive %s", archive.Path)

		sigolo.Infof("▶️  Parsing %s", cfg.Document)
		job.Records, err = index.Rebuild(job.Source(), cfg.Cache, cfg.Naming)
		if err != nil {
			return grid.Matrix{}, err
		}
		sigolo.Infof("✔️  Parsed %d tiles and wrote %s in %s", len(job.Records), cfg.Cache, time.Since(timer).String())
	} else {
		sigolo.Infof("▶️  Loading %s", cfg.Cache)
		job.Records, err = index.Load(job.Source(), cfg.Cache, cfg.Naming, cfg.CacheValidator())
		if err != nil {
			return grid.Matrix{}, err
		}
		sigolo.Infof("✔️  Loaded %d tiles in %s", len(job.Records), time.Since(timer).String())
	}

	job.Assemble()

	for i, row := range job.Matrix.Rows {
		sigolo.Debugf("Row %d: north %v, south %v, %d tiles", i, row.North, row.South, len(row.Tiles))
	}

	sigolo.Infof("\n    🎉  Finished in %s", time.Since(start).String())
	return job.Matrix, nil
}
