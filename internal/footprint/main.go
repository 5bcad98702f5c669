package footprint

import (
	"path/filepath"
	"time"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/pipeline"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
	"github.com/pkg/errors"
)

// Run is the footprints command's entrypoint
func Run(cfg config.Config, out string) error {
	start := time.Now()

	if !utils.IsDirectory(filepath.Dir(out)) {
		return errors.Errorf("Output directory of %s doesn't exist", out)
	}

	job, err := pipeline.Open(cfg)
	if err != nil {
		return err
	}
	defer job.Close()

	timer := time.Now()
	sigolo.Infof("▶️  Writing footprints to %s", out)
	err = WriteFile(job.Matrix, out)
	if err != nil {
		return err
	}
	sigolo.Infof("✔️  Wrote %d footprints in %s", job.Matrix.Len(), time.Since(timer).String())

	sigolo.Infof("\n    🎉  Finished in %s", time.Since(start).String())
	return nil
}
