package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/catalog"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/config"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/footprint"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/locator"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/logging"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/mosaic"
	"github.com/markmelnic/Light-Pollution-Mapper/internal/tile"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging     string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version     VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Archive     string      `help:"The KMZ archive. If not given, the single .kmz file in the working directory is used." placeholder:"<archive>" env:"KMZ_ARCHIVE"`
	Document    string      `help:"Name of the overlay document inside the archive." default:"${document}" env:"KMZ_DOCUMENT"`
	ImageFolder string      `help:"Folder of the tile images inside the archive." default:"${imageFolder}" env:"KMZ_IMAGE_FOLDER"`
	Cache       string      `help:"Tile index cache. An existing file is used as is, without looking at the archive's overlay document." default:"${cache}" env:"KMZ_CACHE"`
	NamePrefix  int         `help:"Leading characters of an overlay name that are not part of the tile ID." default:"${namePrefix}" env:"KMZ_NAME_PREFIX"`
	NameSuffix  int         `help:"Trailing characters of an overlay name that are not part of the tile ID." default:"${nameSuffix}" env:"KMZ_NAME_SUFFIX"`
	StrictCache bool        `help:"Check an existing cache against the overlay document and rebuild it on mismatch." env:"KMZ_STRICT_CACHE"`

	Mosaic struct {
		Out           string `help:"The output image (.jpg, .png, .tif or .bmp)." short:"o" default:"${mosaic}"`
		Quality       int    `help:"JPEG quality of the output images." default:"90"`
		HeightPolicy  string `help:"What to do with tiles of unequal height within a row: pad them or fail." enum:"pad,fail" default:"pad"`
		Preview       string `help:"Also write a downscaled preview of the mosaic to this file." placeholder:"<file>"`
		PreviewHeight uint   `help:"Height of the preview in pixels." default:"512"`
		Meta          string `help:"Also write a JSON description of the mosaic to this file." placeholder:"<file>"`
	} `cmd:"" help:"Composes all tiles of the archive into one image."`
	Locate struct {
		Lat float64 `help:"Latitude in degrees." arg:""`
		Lon float64 `help:"Longitude in degrees." arg:""`
	} `cmd:"" help:"Finds the tile containing the given coordinate. Use '--' before negative coordinates."`
	Index struct {
		Force bool `help:"Parse the overlay document even if a cache exists and overwrite the cache."`
	} `cmd:"" help:"Builds the tile index cache from the archive's overlay document."`
	Footprints struct {
		Out string `help:"The GeoJSON output file." short:"o" default:"tiles.geojson"`
	} `cmd:"" help:"Writes the outlines of all tiles as GeoJSON."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("kmz-mosaic"),
		kong.Description("Assembles the geo-referenced image tiles of a KMZ archive into one mosaic and looks up tiles by coordinate."),
		kong.Vars{
			"version":     VERSION,
			"document":    config.DefaultDocument,
			"imageFolder": config.DefaultImageFolder,
			"cache":       config.DefaultCache,
			"mosaic":      config.DefaultMosaic,
			"namePrefix":  fmt.Sprintf("%d", tile.DefaultNaming.Prefix),
			"nameSuffix":  fmt.Sprintf("%d", tile.DefaultNaming.Suffix),
		},
	)

	err := logging.Configure(cli.Logging)
	sigolo.FatalCheck(err)

	cfg := config.Default()
	cfg.Archive = cli.Archive
	cfg.Document = cli.Document
	cfg.ImageFolder = cli.ImageFolder
	cfg.Cache = cli.Cache
	cfg.Naming = tile.Naming{Prefix: cli.NamePrefix, Suffix: cli.NameSuffix}
	cfg.StrictCache = cli.StrictCache

	switch ctx.Command() {
	case "mosaic":
		var policy mosaic.Policy
		policy, err = mosaic.ParsePolicy(cli.Mosaic.HeightPolicy)
		sigolo.FatalCheck(err)

		err = mosaic.Run(cfg, mosaic.Options{
			Out:           cli.Mosaic.Out,
			Quality:       cli.Mosaic.Quality,
			Policy:        policy,
			Preview:       cli.Mosaic.Preview,
			PreviewHeight: cli.Mosaic.PreviewHeight,
			Meta:          cli.Mosaic.Meta,
		})
		sigolo.FatalCheck(err)
	case "locate <lat> <lon>":
		_, _, err = locator.Run(cfg, cli.Locate.Lat, cli.Locate.Lon)
		sigolo.FatalCheck(err)
	case "index":
		_, err = catalog.Run(cfg, cli.Index.Force)
		sigolo.FatalCheck(err)
	case "footprints":
		err = footprint.Run(cfg, cli.Footprints.Out)
		sigolo.FatalCheck(err)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}
