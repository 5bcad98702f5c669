package mosaic

import (
	"path/filepath"
	"time"

	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/metajson"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/pipeline"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/preview"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/utils"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/validate"
	"github.com/pkg/errors"
)

// Options of the mosaic command
type Options struct {
	Out           string
	Quality       int
	Policy        Policy
	Preview       string
	PreviewHeight uint
	Meta          string
}

// Run is the mosaic command's entrypoint
func Run(cfg config.Config, opts Options) error {
	var timer time.Time
	start := time.Now()

	// make sure the output locations exist before doing any work
	for _, out := range []string{opts.Out, opts.Preview, opts.Meta} {
		if out != "" && !utils.IsDirectory(filepath.Dir(out)) {
			return errors.Errorf("Output directory of %s doesn't exist", out)
		}
	}

	job, err := pipeline.Open(cfg)
	if err != nil {
		return err
	}
	defer job.Close()

	images := ArchiveImages{Archive: job.Archive, Folder: cfg.ImageFolder}

	err = validate.Images(job.Archive, job.Records, images.Entry)
	if err != nil {
		return err
	}
	sigolo.Info("✔️  Validated tile images")

	timer = time.Now()
	sigolo.Infof("▶️  Composing mosaic (height policy: %s)", opts.Policy)
	img, err := ComposeGlobe(job.Matrix, images, opts.Policy)
	if err != nil {
		return err
	}
	sigolo.Infof("✔️  Composed %dx%d mosaic in %s", img.Bounds().Dx(), img.Bounds().Dy(), time.Since(timer).String())

	timer = time.Now()
	sigolo.Infof("▶️  Writing %s", opts.Out)
	err = Save(opts.Out, img, opts.Quality)
	if err != nil {
		return err
	}
	sigolo.Infof("✔️  Wrote %s in %s", opts.Out, time.Since(timer).String())

	if opts.Preview != "" {
		timer = time.Now()
		sigolo.Infof("▶️  Building x%d preview", opts.PreviewHeight)
		err = Save(opts.Preview, preview.Build(img, opts.PreviewHeight), opts.Quality)
		if err != nil {
			return err
		}
		sigolo.Infof("✔️  Built preview %s in %s", opts.Preview, time.Since(timer).String())
	}

	if opts.Meta != "" {
		timer = time.Now()
		sigolo.Infof("▶️  Creating %s", opts.Meta)
		meta := metajson.New(filepath.Base(opts.Out), img.Bounds().Dx(), img.Bounds().Dy(), job.Matrix, opts.Policy.String())
		err = metajson.Write(opts.Meta, meta)
		if err != nil {
			return err
		}
		sigolo.Infof("✔️  Created %s in %s", opts.Meta, time.Since(timer).String())
	}

	sigolo.Infof("\n    🎉  Finished in %s", time.Since(start).String())
	return nil
}
