// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package render resamples a prepared square bitmap into each catalog
// rendition and writes the PNG files.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/appicongen/appicongen/lib/catalog"
	"github.com/appicongen/appicongen/lib/prepare"
)

var ErrBadQuality = errors.New("render: bad quality; expected low, medium or high")

// Quality selects the resampling kernel used for downscaling. Higher
// qualities are slower. The zero value is QualityHigh, so a zero
// EmitOptions means highest quality.
type Quality uint8

const (
	QualityHigh   = Quality(0)
	QualityMedium = Quality(1)
	QualityLow    = Quality(2)
)

// ParseQuality converts a quality name ("low", "medium" or "high") to a
// Quality.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrBadQuality, s)
}

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	}
	return ""
}

// Scaler returns the resampling kernel for the Quality, or nil if the
// Quality is not one of the three defined levels.
func (q Quality) Scaler() draw.Scaler {
	switch q {
	case QualityHigh:
		return draw.CatmullRom
	case QualityMedium:
		return draw.BiLinear
	case QualityLow:
		return draw.ApproxBiLinear
	}
	return nil
}

// EmitOptions are optional arguments to Emit. The zero value is valid and
// means to use the default configuration (high quality, no progress output).
type EmitOptions struct {
	// Quality selects the resampling kernel. If zero, the default is
	// QualityHigh.
	Quality Quality
	// Progress, if non-nil, receives one line per file written.
	Progress io.Writer
}

// Emit resamples p to every entry in specs and writes one PNG per entry
// into outDir, which must already exist. It returns the number of files
// written.
//
// The first failure aborts the run: no entry is skipped and no cleanup of
// already-written files is attempted. Entries are not deduplicated; if two
// entries share a stem and pixel size the later one overwrites the earlier,
// which is accepted rather than detected.
//
// options may be nil, which means to use the default configuration.
func Emit(p *prepare.Prepared, specs []catalog.IconSpec, outDir string, options *EmitOptions) (int, error) {
	quality := QualityHigh
	var progress io.Writer
	if options != nil {
		quality = options.Quality
		progress = options.Progress
	}
	scaler := quality.Scaler()
	if scaler == nil {
		return 0, ErrBadQuality
	}

	written := 0
	for _, spec := range specs {
		path := filepath.Join(outDir, spec.Filename())
		if err := writePNG(path, resample(p.Image, spec.PixelSize(), scaler)); err != nil {
			return written, fmt.Errorf("render: %s: %w", spec.Filename(), err)
		}
		written++
		if progress != nil {
			fmt.Fprintf(progress, "Created: %s (%dx%d) - %s\n",
				path, spec.PixelSize(), spec.PixelSize(), spec.Desc)
		}
	}
	return written, nil
}

func resample(src image.Image, edge int, scaler draw.Scaler) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, edge, edge))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func writePNG(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
