// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package imagetest builds synthetic source images for tests, so that the
// repository does not need to ship binary fixtures.
package imagetest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Gradient returns a width×height NRGBA image whose pixel values vary with
// position, so that crops taken from different offsets differ.
func Gradient(width int, height int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x),
				G: uint8(y),
				B: uint8(x ^ y),
				A: 0xFF,
			})
		}
	}
	return m
}

// Paletted returns a width×height paletted image, for exercising the color
// mode conversion path.
func Paletted(width int, height int) *image.Paletted {
	palette := color.Palette{
		color.NRGBA{0x00, 0x00, 0x00, 0xFF},
		color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		color.NRGBA{0xFF, 0x00, 0x00, 0xFF},
		color.NRGBA{0x00, 0x00, 0xFF, 0x80},
	}
	m := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetColorIndex(x, y, uint8((x+y)%len(palette)))
		}
	}
	return m
}

// WritePNG encodes m into a file named name inside a fresh temp directory
// and returns the file's path.
func WritePNG(tt *testing.T, m image.Image, name string) string {
	tt.Helper()
	path := filepath.Join(tt.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		tt.Fatalf("os.Create: %v", err)
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		tt.Fatalf("png.Encode: %v", err)
	}
	if err := f.Close(); err != nil {
		tt.Fatalf("Close: %v", err)
	}
	return path
}
