package pipeline

import (
	"time"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/grid"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/index"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/kmz"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
)

// Job holds the state of one batch run. Close must be called once the job is done.
type Job struct {
	Config  config.Config
	Archive *kmz.Archive
	Records []tile.Record
	Matrix  grid.Matrix
}

// OpenArchive opens the configured archive or, if none is configured, the single KMZ file
// of the working directory
func OpenArchive(cfg config.Config) (*kmz.Archive, error) {
	archivePath := cfg.Archive
	if archivePath == "" {
		var err error
		archivePath, err = kmz.Discover(cfg.WorkDir)
		if err != nil {
			return nil, err
		}
	}

	return kmz.Open(archivePath)
}

// Open opens the archive, loads the tile index and assembles the tile matrix
func Open(cfg config.Config) (*Job, error) {
	var timer time.Time

	timer = time.Now()
	sigolo.Info("▶️  Opening archive")
	archive, err := OpenArchive(cfg)
	if err != nil {
		return nil, err
	}
	sigolo.Infof("✔️  Opened %s in %s", archive.Path, time.Since(timer).String())

	job := &Job{Config: cfg, Archive: archive}

	timer = time.Now()
	sigolo.Info("▶️  Loading tile index")
	job.Records, err = index.Load(job.Source(), cfg.Cache, cfg.Naming, cfg.CacheValidator())
	if err != nil {
		job.Close()
		return nil, err
	}
	sigolo.Infof("✔️  Loaded %d tiles in %s", len(job.Records), time.Since(timer).String())

	job.Assemble()

	return job, nil
}

// Source returns the overlay document of the job's archive
func (j *Job) Source() index.Source {
	return index.DocumentSource{Archive: j.Archive, Document: j.Config.Document}
}

// Assemble (re)builds the tile matrix from the job's records and reports overlapping tiles
func (j *Job) Assemble() {
	timer := time.Now()
	sigolo.Info("▶️  Assembling tile grid")
	j.Matrix = grid.Assemble(j.Records)
	sigolo.Infof("✔️  Assembled %d rows (up to %d tiles each) in %s", len(j.Matrix.Rows), j.Matrix.Columns(), time.Since(timer).String())

	for _, overlap := range grid.Overlaps(j.Records) {
		sigolo.Warnf("Tiles '%s' and '%s' overlap, the mosaic and lookups assume they don't", overlap.A.ID, overlap.B.ID)
	}
}

// Close releases the archive
func (j *Job) Close() {
	if j.Archive == nil {
		return
	}

	err := j.Archive.Close()
	if err != nil {
		sigolo.Errorf("Unable to close archive %s: %s", j.Archive.Path, err.Error())
	}
	j.Archive = nil
}
