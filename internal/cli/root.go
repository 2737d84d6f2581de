// Package cli implements the hamweave command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hamweave"
	"github.com/katalvlaran/hamweave/lattice"
	"github.com/katalvlaran/hamweave/weave"
)

// Version is set at build time via ldflags.
var Version = "dev"

type options struct {
	order     int
	box       []int
	repeats   int
	format    string
	maxStalls int
	strict    bool
	verbose   bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "hamweave",
		Short: "Weave a Hamiltonian cycle through an odd-coordinate box lattice",
		Long: `hamweave peels the lower half of a box lattice into per-level chains,
stitches them into threads, mirrors the threads into loops and splices
the loops into one Hamiltonian cycle.

The lattice is a cube chosen by node count (--order), or an explicit box
given by its odd x,y,z extents (--box).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	cmd.SetVersionTemplate("hamweave version {{.Version}}\n")

	f := cmd.Flags()
	f.IntVarP(&o.order, "order", "n", 64, "node count of the cube lattice, (extent+1)^3")
	f.IntSliceVar(&o.box, "box", nil, "odd x,y,z extents of a box lattice; overrides --order")
	f.IntVarP(&o.repeats, "repeats", "r", 1, "number of timed repetitions")
	f.StringVarP(&o.format, "format", "f", "text", "output format: text or yaml")
	f.IntVar(&o.maxStalls, "max-stalls", weave.DefaultMaxStalls, "weaving rounds without progress before giving up")
	f.BoolVar(&o.strict, "strict", true, "fail unless the tour is a Hamiltonian cycle")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

func (o *options) buildLattice() (*lattice.Lattice, error) {
	if len(o.box) > 0 {
		if len(o.box) != 3 {
			return nil, fmt.Errorf("--box needs 3 extents, got %d", len(o.box))
		}
		return lattice.New(o.box[0], o.box[1], o.box[2])
	}
	ext, err := lattice.ExtentForOrder(o.order)
	if err != nil {
		return nil, err
	}
	return lattice.Cube(ext)
}

func (o *options) run(cmd *cobra.Command) error {
	if o.format != "text" && o.format != "yaml" {
		return fmt.Errorf("unknown format %q", o.format)
	}
	l, err := o.buildLattice()
	if err != nil {
		return err
	}

	rep, err := hamweave.Run(l, o.repeats,
		hamweave.WithLogger(o.logger),
		hamweave.WithMaxStalls(o.maxStalls),
		hamweave.WithStrict(o.strict))
	if err != nil {
		return err
	}

	if o.format == "yaml" {
		return rep.WriteYAML(cmd.OutOrStdout())
	}
	return rep.WriteText(cmd.OutOrStdout())
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
