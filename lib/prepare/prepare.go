// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package prepare loads a source image and normalizes it into the square
// bitmap that every icon rendition is resampled from.
//
// Normalization is: convert unusual color models to NRGBA, center-crop
// non-square inputs to the smaller dimension, and upscale anything between
// 512 and 1024 pixels up to 1024×1024. Inputs smaller than 512 pixels are
// rejected outright.
package prepare

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MinDimension is the smallest acceptable edge length of a source image.
const MinDimension = 512

// UpscaleTarget is the edge length that undersized (but acceptable) sources
// are upscaled to.
const UpscaleTarget = 1024

var ErrTooSmall = errors.New(
	"prepare: source image is too small; the shorter edge must be at least 512 pixels")

// Metadata describes a source image without fully decoding it.
type Metadata struct {
	Width  int
	Height int
	// Format is the registered name of the decoded format, like "png".
	Format string
}

// Validate checks that path names a readable image whose shorter edge is at
// least MinDimension pixels. File-system and decode errors pass through;
// undersized images fail with an error wrapping ErrTooSmall.
func Validate(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, err
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("prepare: decoding %q: %w", path, err)
	}

	m := Metadata{
		Width:  config.Width,
		Height: config.Height,
		Format: format,
	}
	if min(m.Width, m.Height) < MinDimension {
		return m, fmt.Errorf("%w (input is %dx%d)", ErrTooSmall, m.Width, m.Height)
	}
	return m, nil
}

// Prepared is the normalized square bitmap a pipeline run resamples from.
// Its width always equals its height.
type Prepared struct {
	// Image is an *image.NRGBA or *image.RGBA with Min at the origin.
	Image image.Image
	// Upscaled records whether the source was below UpscaleTarget and got
	// enlarged. Callers surface this as a warning, not an error.
	Upscaled bool
	// SourceWidth and SourceHeight are the decoded dimensions before any
	// cropping or scaling.
	SourceWidth  int
	SourceHeight int
}

// Size returns the edge length of the prepared bitmap in pixels.
func (p *Prepared) Size() int {
	return p.Image.Bounds().Dx()
}

// PrepareOptions are optional arguments to Prepare. The zero value is valid
// and means to use the default configuration.
type PrepareOptions struct {
	// Progress, if non-nil, receives human-readable progress and warning
	// lines.
	Progress io.Writer
}

func (o *PrepareOptions) progressf(format string, args ...any) {
	if (o != nil) && (o.Progress != nil) {
		fmt.Fprintf(o.Progress, format+"\n", args...)
	}
}

// Prepare decodes the image at path and normalizes it to a square bitmap.
//
// options may be nil, which means to use the default configuration.
func Prepare(path string, options *PrepareOptions) (*Prepared, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("prepare: decoding %q: %w", path, err)
	}

	b := src.Bounds()
	p := &Prepared{
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
	}
	if min(p.SourceWidth, p.SourceHeight) < MinDimension {
		return nil, fmt.Errorf("%w (input is %dx%d)",
			ErrTooSmall, p.SourceWidth, p.SourceHeight)
	}

	m := normalize(src)

	if mb := m.Bounds(); mb.Dx() != mb.Dy() {
		options.progressf("Warning: input image is not square (%dx%d); center-cropping to %dx%d",
			mb.Dx(), mb.Dy(), min(mb.Dx(), mb.Dy()), min(mb.Dx(), mb.Dy()))
		m = centerCrop(m)
	}

	if edge := m.Bounds().Dx(); edge < UpscaleTarget {
		options.progressf("Warning: input image is below %dx%d; upscaling from %dx%d",
			UpscaleTarget, UpscaleTarget, edge, edge)
		m = upscale(m)
		p.Upscaled = true
	}

	p.Image = m
	return p, nil
}

// normalize returns src as an origin-anchored *image.NRGBA or *image.RGBA.
// Anything outside that allow-list (paletted, YCbCr, gray, CMYK) is redrawn
// into NRGBA, which keeps any transparency.
func normalize(src image.Image) image.Image {
	b := src.Bounds()
	switch src := src.(type) {
	case *image.NRGBA:
		if b.Min == (image.Point{}) {
			return src
		}
	case *image.RGBA:
		if b.Min == (image.Point{}) {
			return src
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// centerCrop crops m to a square with edge min(width, height). The crop
// offset on each leading side is floor(excess/2), so when the excess is odd
// the bottom or right edge absorbs the extra pixel.
func centerCrop(m image.Image) image.Image {
	b := m.Bounds()
	edge := min(b.Dx(), b.Dy())
	x0 := (b.Dx() - edge) / 2
	y0 := (b.Dy() - edge) / 2
	r := image.Rect(x0, y0, x0+edge, y0+edge)

	switch m := m.(type) {
	case *image.NRGBA:
		return anchor(m.SubImage(r))
	case *image.RGBA:
		return anchor(m.SubImage(r))
	}
	return m
}

// anchor redraws m so that its bounds start at the origin. SubImage keeps
// the parent's coordinate space, and the resampler wants plain 0-based
// bounds.
func anchor(m image.Image) image.Image {
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}

// upscale enlarges m to UpscaleTarget×UpscaleTarget. This always uses the
// highest-quality kernel, independent of the output quality the caller asked
// for, because every rendition derives from this one bitmap.
func upscale(m image.Image) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, UpscaleTarget, UpscaleTarget))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), m, m.Bounds(), xdraw.Src, nil)
	return dst
}
