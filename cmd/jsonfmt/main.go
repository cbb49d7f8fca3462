// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonfmt re-encodes JSON from stdin (or a file) with a chosen
// escape profile and map-key policy, using Decode, then Encode or
// EncoderPool.Encode, with every Option. It is grounded on
// kubernetes-kubernetes's cmd/manifest-query, which pairs cobra's
// command tree with pflag-declared package-level flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	json "github.com/caldera-go/turbojson"
)

var (
	inPath    = pflag.StringP("input", "f", "", "File to read JSON from. Defaults to stdin")
	outPath   = pflag.StringP("output", "o", "", "File to write output to. Defaults to stdout")
	escape    = pflag.StringP("escape", "e", "json", "Escape profile: json, javascript, html_safe, or unicode")
	strict    = pflag.Bool("strict", false, "Encode with duplicate-key checking; decoding already keeps only the last value of a repeated key")
	maxDepth  = pflag.Int("max-depth", json.DefaultMaxDepth, "Maximum nesting depth before encoding fails")
	keysCopy  = pflag.Bool("no-intern", false, "Disable key string interning on decode")
	usePool   = pflag.Bool("pool", false, "Encode via a pooled EncoderPool instead of a one-shot call")
	verbose   = pflag.BoolP("verbose", "v", false, "Log each stage at info level")
)

func main() {
	cmd := &cobra.Command{
		Use:   "jsonfmt",
		Short: "Re-encode JSON with a chosen escape profile and key policy",
		RunE:  run,
	}
	cmd.Flags().AddFlagSet(pflag.CommandLine)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonfmt:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	profile, err := parseEscapeProfile(*escape)
	if err != nil {
		return err
	}

	input, err := openInput(*inPath)
	if err != nil {
		return err
	}
	defer input.Close()

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("jsonfmt: reading input: %w", err)
	}
	logger.Info("read input", zap.Int("bytes", len(data)), zap.String("source", *inPath))

	decodeOpts := json.DecodeOptions{Keys: json.KeysStrings}
	if *keysCopy {
		decodeOpts.Keys = json.KeysCopy
	}
	value, err := json.Decode(data, decodeOpts)
	if err != nil {
		logger.Error("decode failed", zap.Error(err))
		return fmt.Errorf("jsonfmt: %w", err)
	}

	mapMode := json.MapsNaive
	if *strict {
		mapMode = json.MapsStrict
	}
	encodeOpts := []json.Option{
		json.WithEscape(profile),
		json.WithMaps(mapMode),
		json.WithMaxDepth(*maxDepth),
	}

	var out string
	if *usePool {
		pool := json.NewEncoderPool()
		out, err = pool.Encode(value, encodeOpts...)
	} else {
		out, err = json.Encode(value, encodeOpts...)
	}
	if err != nil {
		logger.Error("encode failed", zap.Error(err), zap.Stringer("profile", profile), zap.Stringer("maps", mapMode))
		return fmt.Errorf("jsonfmt: %w", err)
	}
	logger.Info("encoded output", zap.Int("bytes", len(out)), zap.Stringer("profile", profile))

	output, err := openOutput(*outPath)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err := io.WriteString(output, out); err != nil {
		return fmt.Errorf("jsonfmt: writing output: %w", err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func parseEscapeProfile(s string) (json.EscapeProfile, error) {
	switch s {
	case "json", "":
		return json.EscapeJSON, nil
	case "javascript":
		return json.EscapeJavaScript, nil
	case "html_safe":
		return json.EscapeHTMLSafe, nil
	case "unicode":
		return json.EscapeUnicode, nil
	default:
		return 0, fmt.Errorf("jsonfmt: unknown escape profile %q", s)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfmt: opening input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("jsonfmt: creating output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
