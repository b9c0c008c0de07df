package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"bst_code/algo"
	"bst_code/bst"
)

var cmdItems = &cli.Command{
	Name:      "items",
	Usage:     "print the values of a tree in order",
	ArgsUsage: `<value>...`,
	Action:    runItems,
}

func runItems(cctx *cli.Context) error {
	tree, err := buildTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, formatValues(tree.Items()))
	return nil
}

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "print the structure of a tree",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output format: indent or branches",
			Value:   "indent",
			EnvVars: []string{"BSTREE_FORMAT"},
		},
		&cli.IntSliceFlag{
			Name:  "delete",
			Usage: "value to delete after building (may be repeated)",
		},
		&cli.BoolFlag{
			Name:  "mirror",
			Usage: "mirror the tree before printing",
		},
	},
	Action: runShow,
}

func runShow(cctx *cli.Context) error {
	tree, err := buildTree(cctx)
	if err != nil {
		return err
	}
	for _, v := range cctx.IntSlice("delete") {
		if !tree.Contains(v) {
			slog.Warn("value not in tree", "value", v)
			continue
		}
		tree.Delete(v)
		slog.Info("deleted", "value", v, "remaining", tree.Len())
	}
	if cctx.Bool("mirror") {
		tree.Mirror()
	}

	switch cctx.String("format") {
	case "indent":
		fmt.Fprint(cctx.App.Writer, tree.String())
	case "branches":
		fmt.Fprint(cctx.App.Writer, branches(tree).String())
	default:
		return fmt.Errorf("unknown format: %s", cctx.String("format"))
	}
	return nil
}

// branches draws tree with one labelled branch per non-empty child.
func branches(tree *bst.Tree[int]) treeprint.Tree {
	root, ok := tree.Value()
	if !ok {
		return treeprint.NewWithRoot("(empty)")
	}
	out := treeprint.NewWithRoot(strconv.Itoa(root))
	addBranches(out, tree)
	return out
}

func addBranches(out treeprint.Tree, tree *bst.Tree[int]) {
	for _, child := range []struct {
		side string
		sub  *bst.Tree[int]
	}{
		{"L", tree.Left()},
		{"R", tree.Right()},
	} {
		v, ok := child.sub.Value()
		if !ok {
			continue
		}
		branch := out.AddMetaBranch(child.side, v)
		addBranches(branch, child.sub)
	}
}

var cmdSort = &cli.Command{
	Name:      "sort",
	Usage:     "sort values with a tree sort",
	ArgsUsage: `<value>...`,
	Action: func(cctx *cli.Context) error {
		values, err := parseValues(cctx.Args().Slice())
		if err != nil {
			return err
		}
		algo.TreeSort(values)
		fmt.Fprintln(cctx.App.Writer, formatValues(values))
		return nil
	},
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
