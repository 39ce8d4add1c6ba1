package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridio"
	"github.com/katalvlaran/lvlgrid/tuple"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errOutputFormat reports an output path whose extension does not match
// the format a command produces.
var errOutputFormat = errors.New("gridctl: output extension does not match format")

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the nodes, cells and permutations of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, doc.Grid().Info())
			if names := doc.FieldNames(); len(names) > 0 {
				fmt.Fprintf(out, "\nFIELDS %v\n", names)
			}

			return nil
		},
	}
}

func newEvalCmd(a *app) *cobra.Command {
	var coord []float64
	cmd := &cobra.Command{
		Use:   "eval FILE --point x0,x1,...",
		Short: "Interpolate every field of a document at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(args[0])
			if err != nil {
				return err
			}
			p, err := grid.NewPoint(doc.Grid(), coord)
			if err != nil {
				return err
			}
			cell := p.Cell()
			ip, err := cell.Interpolant(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "point = %s\n", p)
			fmt.Fprintf(out, "cell = %d %s\n", cell.Index(), cell)
			weights := ip.Weights()
			for i, v := range ip.VerticesIndex() {
				fmt.Fprintf(out, "vertex[%d] = %d weight = %.6f\n", i, v, weights[i])
			}

			names := doc.FieldNames()
			fields := make([][]float64, len(names))
			for i, name := range names {
				if fields[i], err = doc.Field(name); err != nil {
					return err
				}
			}
			values, err := ip.LerpFields(fields)
			if err != nil {
				return err
			}
			for i, name := range names {
				fmt.Fprintf(out, "%s = %.6f\n", name, values[i])
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&coord, "point", "p", nil, "point coordinates, one per dimension")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}

func newProductCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "product FILE FILE... -o OUT",
		Short: "Write the Cartesian product of several grids",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grids := make([]*grid.Grid, len(args))
			for i, path := range args {
				doc, err := a.readDoc(path)
				if err != nil {
					return err
				}
				grids[i] = doc.Grid()
			}
			g, err := grid.CartesianProduct(grids...)
			if err != nil {
				return err
			}
			doc, err := gridio.NewDocument(g)
			if err != nil {
				return err
			}

			return a.writeDoc(output, doc)
		},
	}
	addOutputFlag(cmd.Flags(), &output, "output file (.toml or binary)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newNormalizeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "normalize FILE -o OUT",
		Short: "Map every dimension of a grid into [0,1], keeping its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readDoc(args[0])
			if err != nil {
				return err
			}
			// node order is unchanged, so fields carry over as they are
			doc, err := gridio.NewDocument(src.Grid().Normalize())
			if err != nil {
				return err
			}
			for _, f := range src.Fields {
				if err = doc.AddField(f.Name, f.Values); err != nil {
					return err
				}
			}

			return a.writeDoc(output, doc)
		},
	}
	addOutputFlag(cmd.Flags(), &output, "output file (.toml or binary)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newEncodeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "encode FILE.toml -o OUT",
		Short: "Convert a grid document to the binary layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gridio.IsTOML(output) {
				return fmt.Errorf("%s: %w", output, errOutputFormat)
			}
			doc, err := a.readDoc(args[0])
			if err != nil {
				return err
			}

			return a.writeDoc(output, doc)
		},
	}
	addOutputFlag(cmd.Flags(), &output, "binary output file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode FILE [-o OUT.toml]",
		Short: "Convert a binary grid to a TOML document (stdout by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && !gridio.IsTOML(output) {
				return fmt.Errorf("%s: %w", output, errOutputFormat)
			}
			doc, err := a.readDoc(args[0])
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, func(w io.Writer) error {
				return gridio.WriteDocument(w, doc)
			})
		},
	}
	addOutputFlag(cmd.Flags(), &output, "TOML output file")

	return cmd
}

// writeDoc stores doc at path in the format its extension selects.
func (a *app) writeDoc(path string, doc *gridio.Document) error {
	if err := gridio.WriteFile(path, doc, a.ioOptions()...); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"file":  path,
		"grid":  doc.Grid().String(),
		"cells": tuple.Format(doc.Grid().CellCounts()),
	}).Info("wrote")

	return nil
}
