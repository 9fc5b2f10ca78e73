package main

import (
	"fmt"
	"io"

	"github.com/2x3systems/ribbon/libribbon/catalog"
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var faceTypes bool

	cmd := &cobra.Command{
		Use:   "catalog <dir>",
		Short: "List the censuses stored in a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCatalog(cmd.OutOrStdout(), args[0], faceTypes)
		},
	}
	cmd.Flags().BoolVar(&faceTypes, "face-types", false, "also print stored face type tallies")
	return cmd
}

func listCatalog(out io.Writer, pathname string, faceTypes bool) error {
	cat, err := catalog.OpenCatalog(ribbon.CatalogOpts{
		DbPathName: pathname,
		ReadOnly:   true,
	})
	if err != nil {
		return err
	}
	defer cat.Close()

	fmt.Fprintf(out, "%d entries\n", cat.NumEntries())

	onHit := make(chan *ribbon.CatalogEntry, 1)
	var selectErr error
	go func() {
		selectErr = cat.Select(onHit)
		close(onHit)
	}()

	for entry := range onHit {
		entry.Census.WriteAsString(out, ribbon.PrintOpts{
			Label:     fmt.Sprintf("\n%v max genus %d", entry.Config.Vertices, entry.Config.MaxGenus),
			Totals:    true,
			FaceTypes: faceTypes,
		})
	}
	return selectErr
}
