package main

import (
	"io"

	"github.com/2x3systems/ribbon/libribbon"
	"github.com/2x3systems/ribbon/libribbon/catalog"
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

type countFlags struct {
	configPath  string
	rotation    string
	numVertices int
	degree      int
	maxGenus    int
	catalogPath string
	faceTypes   bool
	elapsed     bool
}

func newCountCmd() *cobra.Command {
	var flags countFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the genus histogram of a rotation system",
		Example: `  ribbon count --rotation "(0 1 2 3)(4 5 6 7)"
  ribbon count --vertices 3 --degree 4 --face-types
  ribbon count --config census.yaml --catalog ./catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-genus") {
				flags.maxGenus = -1
			}
			cfg, err := flags.resolveConfig()
			if err != nil {
				return err
			}
			return runCount(cmd.OutOrStdout(), cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&flags.rotation, "rotation", "r", "", `rotation system in cycle notation, e.g. "(0 1 2 3)(4 5 6 7)"`)
	cmd.Flags().IntVar(&flags.numVertices, "vertices", 0, "number of vertices of a regular rotation system")
	cmd.Flags().IntVar(&flags.degree, "degree", 0, "degree of each vertex of a regular rotation system")
	cmd.Flags().IntVarP(&flags.maxGenus, "max-genus", "g", 0, "largest genus binned (default: the genus bound of the rotation system)")
	cmd.Flags().StringVar(&flags.catalogPath, "catalog", "", "catalog directory used to look up and store results")
	cmd.Flags().BoolVar(&flags.faceTypes, "face-types", false, "also tally face types per genus")
	cmd.Flags().BoolVar(&flags.elapsed, "time", false, "print the running time")
	return cmd
}

// resolveConfig builds the Config from either a config file or the inline flags.
func (flags *countFlags) resolveConfig() (ribbon.Config, error) {
	var cfg ribbon.Config
	var err error

	if len(flags.configPath) > 0 {
		if len(flags.rotation) > 0 || flags.numVertices > 0 || flags.degree > 0 {
			return cfg, errors.Wrap(ribbon.ErrBadConfig, "--config can't be combined with --rotation, --vertices or --degree")
		}
		cfg, err = libribbon.LoadConfig(flags.configPath)
	} else {
		cf := libribbon.ConfigFile{
			Rotation:    flags.rotation,
			NumVertices: flags.numVertices,
			Degree:      flags.degree,
		}
		cfg, err = cf.Resolve()
	}
	if err != nil {
		return cfg, err
	}

	if flags.maxGenus >= 0 {
		cfg.MaxGenus = flags.maxGenus
	}
	return cfg, cfg.Validate()
}

func runCount(out io.Writer, cfg ribbon.Config, flags countFlags) error {
	var cat ribbon.Catalog
	if len(flags.catalogPath) > 0 {
		var err error
		cat, err = catalog.OpenCatalog(ribbon.CatalogOpts{
			DbPathName: flags.catalogPath,
		})
		if err != nil {
			return err
		}
		defer cat.Close()
	}

	census, err := lookupOrTakeCensus(cat, &cfg, libribbon.CensusOpts{
		FaceTypes: flags.faceTypes,
	})
	if err != nil {
		return errors.Wrapf(err, "census %v", cfg.Vertices)
	}

	census.WriteAsString(out, ribbon.PrintOpts{
		Totals:    true,
		FaceTypes: flags.faceTypes,
		Elapsed:   flags.elapsed,
	})
	return nil
}

// lookupOrTakeCensus returns the catalog's census for cfg if present, otherwise computes it and stores it.
func lookupOrTakeCensus(cat ribbon.Catalog, cfg *ribbon.Config, opts libribbon.CensusOpts) (*ribbon.Census, error) {
	if cat != nil {
		census, err := cat.Get(cfg)
		if err == nil && (!opts.FaceTypes || len(census.FaceTypes) > 0) {
			klog.V(1).Infof("census %v found in catalog", cfg.Vertices)
			return census, nil
		}
		if err != nil && !errors.Is(err, ribbon.ErrNotFound) {
			return nil, err
		}
	}

	census, err := libribbon.TakeCensus(cfg, opts)
	if err != nil {
		return nil, err
	}

	if cat != nil {
		if err = cat.Put(cfg, census); err != nil {
			return nil, err
		}
	}
	return census, nil
}
