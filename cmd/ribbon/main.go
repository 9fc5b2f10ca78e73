package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		klog.Error(err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := &cobra.Command{
		Use:           "ribbon",
		Short:         "ribbon counts ribbon graph embeddings by genus",
		Long:          `ribbon enumerates every pairing of the arrows of a fixed rotation system into edges and bins the connected embeddings by the genus of their surface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddGoFlagSet(fset)

	root.AddCommand(newCountCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newCatalogCmd())
	return root
}
