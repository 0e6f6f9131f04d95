// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// appicongen generates the full set of iOS app icon PNG files, plus the
// Contents.json manifest, from a single source image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appicongen/appicongen/lib/catalog"
	"github.com/appicongen/appicongen/lib/manifest"
	"github.com/appicongen/appicongen/lib/prepare"
	"github.com/appicongen/appicongen/lib/render"
)

var (
	qualityFlag = flag.String("quality", "high", "resampling quality: low, medium or high")
)

const usageStr = `appicongen generates the iOS app icon set from a single source image.

Usage:

    appicongen [-quality=high|medium|low] input-image [output-directory]

The source image should be a square PNG of at least 1024x1024 pixels; BMP,
GIF, JPEG, TIFF and WEBP inputs are also accepted. Non-square images are
center-cropped and images between 512 and 1024 pixels are upscaled, with a
warning. Images below 512 pixels are rejected.

The output directory defaults to ./AppIcons. The icon files and the
Contents.json manifest are written into an AppIcon.appiconset subdirectory.
`

// iconSetDir is the subdirectory the asset toolchain expects the icon files
// and manifest under.
const iconSetDir = "AppIcon.appiconset"

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	inPath := ""
	outRoot := "AppIcons"
	switch flag.NArg() {
	case 1:
		inPath = flag.Arg(0)
	case 2:
		inPath = flag.Arg(0)
		outRoot = flag.Arg(1)
	default:
		return errors.New("expected an input image path and an optional output directory")
	}

	quality, err := render.ParseQuality(*qualityFlag)
	if err != nil {
		return err
	}

	// Validate before touching the output directory, so a bad input leaves
	// no half-made directory tree behind.
	meta, err := prepare.Validate(inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Input: %s (%s, %dx%d)\n", inPath, meta.Format, meta.Width, meta.Height)

	outDir := filepath.Join(outRoot, iconSetDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	prepared, err := prepare.Prepare(inPath, &prepare.PrepareOptions{Progress: os.Stderr})
	if err != nil {
		return err
	}

	specs := catalog.IOS()
	n, err := render.Emit(prepared, specs, outDir, &render.EmitOptions{
		Quality:  quality,
		Progress: os.Stderr,
	})
	if err != nil {
		return err
	}

	if _, err := manifest.Write(specs, outDir); err != nil {
		return err
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		absDir = outDir
	}
	fmt.Fprintf(os.Stderr, "\nGenerated %d icons and %s in: %s\n", n, manifest.Name, absDir)
	return nil
}
