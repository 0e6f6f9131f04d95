// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package prepare

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"strings"
	"testing"

	"github.com/appicongen/appicongen/internal/imagetest"
)

func TestValidate(tt *testing.T) {
	testCases := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"exactly-minimum", 512, 512, nil},
		{"large-square", 1024, 1024, nil},
		{"wide", 2000, 1500, nil},
		{"short-edge-just-under", 1024, 511, ErrTooSmall},
		{"tiny", 64, 64, ErrTooSmall},
	}

	for _, tc := range testCases {
		path := imagetest.WritePNG(tt, imagetest.Gradient(tc.width, tc.height), "in.png")
		meta, err := Validate(path)
		if !errors.Is(err, tc.wantErr) {
			tt.Errorf("tc=%q: Validate: got %v, want %v", tc.name, err, tc.wantErr)
			continue
		}
		if (meta.Width != tc.width) || (meta.Height != tc.height) {
			tt.Errorf("tc=%q: metadata: got %dx%d, want %dx%d",
				tc.name, meta.Width, meta.Height, tc.width, tc.height)
		}
		if (err == nil) && (meta.Format != "png") {
			tt.Errorf("tc=%q: format: got %q, want %q", tc.name, meta.Format, "png")
		}
	}
}

func TestValidateMissingFile(tt *testing.T) {
	_, err := Validate("no/such/image.png")
	if err == nil {
		tt.Fatal("Validate: expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		tt.Errorf("Validate: got %v, want fs.ErrNotExist", err)
	}
}

func TestPrepareSquarePassThrough(tt *testing.T) {
	path := imagetest.WritePNG(tt, imagetest.Gradient(1200, 1200), "in.png")
	p, err := Prepare(path, nil)
	if err != nil {
		tt.Fatalf("Prepare: %v", err)
	}
	if p.Size() != 1200 {
		tt.Errorf("Size: got %d, want 1200", p.Size())
	}
	if p.Upscaled {
		tt.Error("Upscaled: got true, want false")
	}
}

func TestPrepareCentersCrop(tt *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
		// wantOffset is the expected (left, top) crop origin in source
		// coordinates.
		wantOffsetX int
		wantOffsetY int
	}{
		{"landscape", 2000, 1500, 250, 0},
		{"portrait", 1500, 2000, 0, 250},
		{"odd-excess", 1027, 1024, 1, 0},
	}

	for _, tc := range testCases {
		src := imagetest.Gradient(tc.width, tc.height)
		path := imagetest.WritePNG(tt, src, "in.png")

		progress := &bytes.Buffer{}
		p, err := Prepare(path, &PrepareOptions{Progress: progress})
		if err != nil {
			tt.Errorf("tc=%q: Prepare: %v", tc.name, err)
			continue
		}

		wantEdge := min(tc.width, tc.height)
		b := p.Image.Bounds()
		if (b.Dx() != wantEdge) || (b.Dy() != wantEdge) {
			tt.Errorf("tc=%q: prepared size: got %dx%d, want %dx%d",
				tc.name, b.Dx(), b.Dy(), wantEdge, wantEdge)
			continue
		}
		if (p.SourceWidth != tc.width) || (p.SourceHeight != tc.height) {
			tt.Errorf("tc=%q: source size: got %dx%d, want %dx%d",
				tc.name, p.SourceWidth, p.SourceHeight, tc.width, tc.height)
		}

		// The prepared origin pixel must come from the floored crop offset.
		got := p.Image.(*image.NRGBA).NRGBAAt(0, 0)
		want := src.NRGBAAt(tc.wantOffsetX, tc.wantOffsetY)
		if got != want {
			tt.Errorf("tc=%q: origin pixel: got %v, want %v (source offset %d,%d)",
				tc.name, got, want, tc.wantOffsetX, tc.wantOffsetY)
		}

		if !strings.Contains(progress.String(), "not square") {
			tt.Errorf("tc=%q: expected a non-square warning, got %q", tc.name, progress.String())
		}
	}
}

func TestPrepareUpscales(tt *testing.T) {
	testCases := []struct {
		name     string
		width    int
		height   int
		wantEdge int
		upscaled bool
	}{
		{"minimum", 512, 512, 1024, true},
		{"small-square", 600, 600, 1024, true},
		{"just-under-target", 1023, 1023, 1024, true},
		{"at-target", 1024, 1024, 1024, false},
		{"above-target", 1500, 1500, 1500, false},
		{"non-square-under-target", 900, 640, 1024, true},
	}

	for _, tc := range testCases {
		path := imagetest.WritePNG(tt, imagetest.Gradient(tc.width, tc.height), "in.png")
		progress := &bytes.Buffer{}
		p, err := Prepare(path, &PrepareOptions{Progress: progress})
		if err != nil {
			tt.Errorf("tc=%q: Prepare: %v", tc.name, err)
			continue
		}
		if p.Size() != tc.wantEdge {
			tt.Errorf("tc=%q: Size: got %d, want %d", tc.name, p.Size(), tc.wantEdge)
		}
		if p.Upscaled != tc.upscaled {
			tt.Errorf("tc=%q: Upscaled: got %t, want %t", tc.name, p.Upscaled, tc.upscaled)
		}
		if gotWarning := strings.Contains(progress.String(), "upscaling"); gotWarning != tc.upscaled {
			tt.Errorf("tc=%q: upscale warning present: got %t, want %t",
				tc.name, gotWarning, tc.upscaled)
		}
	}
}

func TestPrepareTooSmall(tt *testing.T) {
	path := imagetest.WritePNG(tt, imagetest.Gradient(400, 400), "in.png")
	if _, err := Prepare(path, nil); !errors.Is(err, ErrTooSmall) {
		tt.Errorf("Prepare: got %v, want ErrTooSmall", err)
	}
}

func TestPrepareNormalizesColorMode(tt *testing.T) {
	path := imagetest.WritePNG(tt, imagetest.Paletted(1024, 1024), "in.png")
	p, err := Prepare(path, nil)
	if err != nil {
		tt.Fatalf("Prepare: %v", err)
	}
	switch p.Image.(type) {
	case *image.NRGBA, *image.RGBA:
		// In the allow-list.
	default:
		tt.Errorf("prepared image type: got %T, want *image.NRGBA or *image.RGBA", p.Image)
	}
}
