// Command wasmiter-dis disassembles a WebAssembly binary module to text
// format.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wasmiterio/wasmiter"
	"github.com/wasmiterio/wasmiter/internal/wlog"
	"github.com/wasmiterio/wasmiter/wat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "wasmiter-dis <module.wasm>",
		Short: "Disassemble a WebAssembly binary module to text format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := wlog.New(verbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync()

			return run(args[0], outPath, logger)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(inPath, outPath string, logger *zap.Logger) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open module: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat module: %w", err)
	}

	logger.Debug("parsing module", zap.String("path", inPath), zap.Int64("size", info.Size()))

	stream := wasmiter.NewStream(f)
	module, err := wasmiter.ParseModule(stream, uint64(info.Size()))
	if err != nil {
		return fmt.Errorf("%s: %w", color.YellowString("parse"), err)
	}

	out := os.Stdout
	if outPath != "" {
		w, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer w.Close()
		out = w
	}

	if err := wat.Write(out, module); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.Info("disassembled", zap.String("path", inPath), zap.String("out", outOrStdout(outPath)))
	return nil
}

func outOrStdout(outPath string) string {
	if outPath == "" {
		return "stdout"
	}
	return outPath
}
