// Command sfhplot loads one star-formation history, resamples it onto a
// geometric look-back time grid and writes a step plot of both series. The
// record comes either from a CIGALE catalogue row or, without a catalogue,
// from an analytic model. Optionally the record is persisted to a local
// store.
package main

import (
	"flag"
	"fmt"
	"os"

	sfhandle "github.com/WilfriedMercier/SFHandle"
	"github.com/WilfriedMercier/SFHandle/catalogue"
	"github.com/WilfriedMercier/SFHandle/interpolate"
	"github.com/WilfriedMercier/SFHandle/sfhmodel"
	"github.com/WilfriedMercier/SFHandle/sfhplot"
	"github.com/WilfriedMercier/SFHandle/store"
	"go.uber.org/zap"
)

func main() {
	cataloguePath := flag.String("catalogue", "", "CIGALE catalogue CSV to load the record from")
	id := flag.String("id", "", "record id within the catalogue, empty picks any row")
	model := flag.String("model", "delayed", "analytic model used when no catalogue is given")
	scale := flag.Float64("scale", 10, "rate scale of the analytic model in Msun/yr")
	tau := flag.Float64("tau", 2000, "timescale of the analytic model in Myr")
	kindName := flag.String("kind", "", "interpolation kind for resampling, empty for the default")
	gridStart := flag.Float64("grid-start", 1, "first look-back time of the resampling grid in Myr")
	gridStop := flag.Float64("grid-stop", 1.4e4, "last look-back time of the resampling grid in Myr")
	gridPoints := flag.Int("grid-points", 100, "number of points of the resampling grid")
	out := flag.String("out", "sfh.png", "output image path")
	storePath := flag.String("store", "", "directory of a record store to persist into, empty to skip")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log, options{
		cataloguePath: *cataloguePath,
		id:            *id,
		model:         *model,
		scale:         *scale,
		tau:           *tau,
		kindName:      *kindName,
		gridStart:     *gridStart,
		gridStop:      *gridStop,
		gridPoints:    *gridPoints,
		out:           *out,
		storePath:     *storePath,
	}); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	cataloguePath string
	id            string
	model         string
	scale, tau    float64
	kindName      string
	gridStart     float64
	gridStop      float64
	gridPoints    int
	out           string
	storePath     string
}

func run(log *zap.SugaredLogger, opts options) error {
	id, rec, err := loadRecord(log, opts)
	if err != nil {
		return err
	}

	kind, err := interpolate.ParseKind(opts.kindName)
	if err != nil {
		return err
	}

	grid, err := sfhandle.Geomspace(opts.gridStart, opts.gridStop, opts.gridPoints)
	if err != nil {
		return err
	}
	if _, _, err := rec.Resample(grid, sfhandle.Options{Kind: kind}); err != nil {
		return err
	}

	log.Infow("record resampled",
		"id", id,
		"kind", kind,
		"edges", rec.Len(),
		"grid", len(grid),
		"total mass [Msun]", rec.Integral(),
		"mass formed beyond 1 Gyr [Msun]", rec.IntegralAt(1000),
	)

	if err := sfhplot.Save(rec, opts.out); err != nil {
		return err
	}
	log.Infow("plot written", "path", opts.out)

	if opts.storePath != "" {
		s, err := store.Open(&store.Config{Path: opts.storePath, Logger: log})
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Put(id, rec); err != nil {
			return err
		}
		log.Infow("record persisted", "id", id, "path", opts.storePath)
	}

	return nil
}

// loadRecord picks a catalogue row when a catalogue is given and synthesises
// a model record otherwise.
func loadRecord(log *zap.SugaredLogger, opts options) (string, *sfhandle.SFH, error) {
	if opts.cataloguePath == "" {
		gen, err := sfhmodel.NewGenerator(sfhmodel.Params{
			Name:      opts.model,
			ModelName: opts.model,
			Scale:     opts.scale,
			Tau:       opts.tau,
			ErrorFrac: 0.1,
		})
		if err != nil {
			return "", nil, err
		}

		edges, err := sfhandle.Linspace(0, opts.gridStop, 20)
		if err != nil {
			return "", nil, err
		}
		rec, err := gen.Build(edges)
		if err != nil {
			return "", nil, err
		}

		log.Infow("record synthesised", "model", opts.model)
		return opts.model, rec, nil
	}

	table, err := catalogue.Load(opts.cataloguePath)
	if err != nil {
		return "", nil, err
	}
	records, err := table.Collection()
	if err != nil {
		return "", nil, err
	}

	if opts.id != "" {
		rec, ok := records[opts.id]
		if !ok {
			return "", nil, fmt.Errorf("catalogue has no record %q", opts.id)
		}
		return opts.id, rec, nil
	}

	for id := range records {
		log.Infow("record loaded", "id", id, "rows", table.Len())
		return id, records[id], nil
	}
	return "", nil, fmt.Errorf("catalogue %s has no rows", opts.cataloguePath)
}
