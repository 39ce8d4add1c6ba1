package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlgrid/gridio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the state shared by every subcommand.
type app struct {
	log      *logrus.Logger
	logLevel string
}

func newApp() *app {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{log: l, logLevel: logrus.InfoLevel.String()}
}

// ioOptions returns the gridio options bound to the app logger.
func (a *app) ioOptions() []gridio.Option {
	return []gridio.Option{gridio.WithLogger(a.log)}
}

// readDoc loads a grid file in either format.
func (a *app) readDoc(path string) (*gridio.Document, error) {
	doc, err := gridio.ReadFile(path, a.ioOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{"file": path, "grid": doc.Grid().String()}).Debug("loaded")

	return doc, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridctl",
		Short:         "Inspect, evaluate and convert rectilinear grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(lvl)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", a.logLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newInfoCmd(a),
		newEvalCmd(a),
		newProductCmd(a),
		newNormalizeCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
	)

	return root
}

// addOutputFlag registers the -o/--output flag on fs.
func addOutputFlag(fs *pflag.FlagSet, out *string, usage string) {
	fs.StringVarP(out, "output", "o", "", usage)
}

// writeOutput runs write against path, or against the command's standard
// output when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
