// Command dmfb-eval evaluates chromosomes of the reconfigurable DMFB placement
// problem produced by an external search engine, and reports the best
// feasible placements found.
package main

import (
	"context"
	goflag "flag"
	"os"

	"github.com/spf13/pflag"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"
)

func main() {
	opts := NewOptions()

	fs := pflag.NewFlagSet("dmfb-eval", pflag.ExitOnError)
	fs.SetNormalizeFunc(cliflag.WordSepNormalizeFunc)
	opts.AddFlags(fs)

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	if err := fs.Parse(os.Args[1:]); err != nil {
		klog.ErrorS(err, "parsing flags")
		klog.FlushAndExit(klog.ExitFlushTimeout, 2)
	}
	opts.objectiveSet = fs.Changed("objective")

	logger := klog.Background()
	ctx := klog.NewContext(context.Background(), logger)

	if err := opts.Validate(); err != nil {
		logger.Error(err, "invalid options")
		klog.FlushAndExit(klog.ExitFlushTimeout, 2)
	}
	if err := Run(ctx, opts); err != nil {
		logger.Error(err, "placement evaluation failed")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	klog.Flush()
}
