package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/deckanalyzer/internal/analysis"
	imagepkg "github.com/youruser/deckanalyzer/internal/image"
	"github.com/youruser/deckanalyzer/internal/report"
	"github.com/youruser/deckanalyzer/internal/util"
)

type analyzeOptions struct {
	outDir       string
	format       string
	strict       bool
	qrPath       string
	qrSize       int
	concurrency  int
	maxFileBytes int64
}

var analyzeOpts analyzeOptions

func addAnalyzeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&analyzeOpts.outDir, "output", "o", "", "Write the export into this directory instead of stdout")
	f.StringVarP(&analyzeOpts.format, "format", "f", "text", "Export format: text, json or yaml")
	f.BoolVar(&analyzeOpts.strict, "strict", false, "Fail on the first decklist that does not parse")
	f.StringVar(&analyzeOpts.qrPath, "qr", "", "Also write a QR PNG of the common main deck to this path")
	f.IntVar(&analyzeOpts.qrSize, "qr-size", 512, "QR code size in pixels")
	f.IntVar(&analyzeOpts.concurrency, "jobs", 4, "Files read concurrently")
	f.Int64Var(&analyzeOpts.maxFileBytes, "max-file-bytes", 1<<20, "Largest decklist file accepted")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	return analyze(cmd, args, analyzeOpts, logger)
}

func analyze(cmd *cobra.Command, paths []string, opts analyzeOptions, log *zap.Logger) error {
	enc, err := report.ParseEncoding(opts.format)
	if err != nil {
		return err
	}

	inputs := make([]util.Opener, 0, len(paths))
	for _, p := range paths {
		inputs = append(inputs, util.FileOpener(p))
	}
	texts, err := util.ReadAll(cmd.Context(), inputs, opts.concurrency, opts.maxFileBytes)
	if err != nil {
		return err
	}

	sources := make([]analysis.Source, 0, len(texts))
	for _, t := range texts {
		sources = append(sources, analysis.Source{Name: t.Name, Text: t.Body})
	}
	res, err := analysis.Analyze(sources, analysis.Options{Strict: opts.strict})
	if err != nil {
		return err
	}
	for _, f := range res.Failures {
		log.Warn("skipping decklist", zap.String("file", f.File), zap.Error(f.Err))
		fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", f)
	}
	log.Debug("analysed", zap.Int("decks", res.DeckCount), zap.Strings("files", res.Files))

	buf := new(bytes.Buffer)
	if err := report.Encode(buf, report.FromResult(res), enc); err != nil {
		return err
	}
	if err := writeExport(cmd.OutOrStdout(), opts.outDir, enc, buf.Bytes()); err != nil {
		return err
	}

	if opts.qrPath != "" {
		png, err := imagepkg.DeckQRPNG(res.CommonMain, opts.qrSize)
		if err != nil {
			return fmt.Errorf("qr: %w", err)
		}
		if err := writeFile(opts.qrPath, png); err != nil {
			return err
		}
		log.Debug("wrote qr", zap.String("path", opts.qrPath))
	}
	return nil
}

func writeExport(stdout io.Writer, dir string, enc report.Encoding, data []byte) error {
	if dir == "" {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
		if enc == report.EncodingText {
			_, err := io.WriteString(stdout, "\n")
			return err
		}
		return nil
	}
	path, err := util.WriteFile(dir, enc.FileName(), data)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "wrote", path)
	return nil
}

func writeFile(path string, data []byte) error {
	_, err := util.WriteFile(filepath.Dir(path), filepath.Base(path), data)
	return err
}
