package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"bst_code/bst"
)

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// parseValues parses every argument as a decimal integer.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildTree inserts the command's positional arguments, in order, into a new
// tree.
func buildTree(cctx *cli.Context) (*bst.Tree[int], error) {
	values, err := parseValues(cctx.Args().Slice())
	if err != nil {
		return nil, err
	}
	tree := bst.New(values...)
	slog.Debug("built tree", "values", len(values), "height", tree.Height())
	return tree, nil
}
