package main

import (
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	_ "github.com/2x3systems/ribbon/pyribbon"
	_ "github.com/go-python/gpython/stdlib"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.py]",
		Short: "Run a python script with the _pyribbon module, or start a REPL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathname := ""
			if len(args) > 0 {
				pathname = args[0]
			}
			return runPython(pathname)
		},
	}
}

func runPython(pathname string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)
		cli.RunREPL(replCtx)
	} else {
		startTime := time.Now()
		klog.Infof("executing '%s'", pathname)

		_, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil)

		if err == nil {
			klog.Infof("execution complete: %v", time.Since(startTime))
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
	}
	return err
}
