// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package catalog defines the fixed table of icon sizes that an iOS
// application bundle requires.
//
// Each entry pairs a logical point size with a display scale factor. The
// pixel size of the rendered bitmap is their product; Apple measures icons in
// points and the catalog carries fractional point sizes (the 12.9" iPad Pro
// icon is 83.5pt) so the arithmetic is done in floating point and floored to
// whole pixels.
package catalog

import (
	"fmt"
	"strings"
)

// Idiom is the device family an icon entry targets.
type Idiom uint8

const (
	IdiomIPhone = Idiom(0)
	IdiomIPad   = Idiom(1)

	// IdiomMarketing is the App Store listing artwork, not an on-device
	// icon.
	IdiomMarketing = Idiom(2)
)

// String returns the idiom name used by Xcode asset catalogs.
func (i Idiom) String() string {
	switch i {
	case IdiomIPhone:
		return "iphone"
	case IdiomIPad:
		return "ipad"
	case IdiomMarketing:
		return "ios-marketing"
	}
	return ""
}

// Scale is a display scale factor: the number of physical pixels per logical
// point along each axis.
type Scale uint8

const (
	Scale1x = Scale(1)
	Scale2x = Scale(2)
	Scale3x = Scale(3)
)

// Factor returns the numeric multiplier.
func (s Scale) Factor() int {
	return int(s)
}

// String returns the scale in asset-catalog notation, like "2x".
func (s Scale) String() string {
	switch s {
	case Scale1x:
		return "1x"
	case Scale2x:
		return "2x"
	case Scale3x:
		return "3x"
	}
	return ""
}

// Role classifies where the system displays an icon. The zero value means
// the entry has no role annotation.
type Role uint8

const (
	RoleNone         = Role(0)
	RolePrimary      = Role(1)
	RoleSpotlight    = Role(2)
	RoleSettings     = Role(3)
	RoleNotification = Role(4)
)

// String returns the role name, or "" for RoleNone.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSpotlight:
		return "spotlight"
	case RoleSettings:
		return "settings"
	case RoleNotification:
		return "notification"
	}
	return ""
}

// IconSpec describes one required icon rendition. Values are never mutated
// after the catalog is defined; consumers that want a subset filter a copy.
type IconSpec struct {
	// Points is the logical edge length. May be fractional.
	Points float64
	// Stem is the output filename prefix, e.g. "iphone_60pt@2x".
	Stem string
	// Idiom is the target device family.
	Idiom Idiom
	// Scale is the display scale factor.
	Scale Scale
	// Role, when non-zero, records the icon's display context.
	Role Role
	// Subgroup, when non-empty, narrows the idiom to a device subset.
	Subgroup string
	// Desc is a human-readable description, used in progress output.
	Desc string
}

// PixelSize returns the rendered edge length in pixels: the point size times
// the scale factor, floored to a whole pixel.
func (s IconSpec) PixelSize() int {
	return int(s.Points * float64(s.Scale.Factor()))
}

// Filename returns the deterministic output filename for the entry, like
// "iphone_60pt@2x_120x120.png".
func (s IconSpec) Filename() string {
	px := s.PixelSize()
	return fmt.Sprintf("%s_%dx%d.png", s.Stem, px, px)
}

// SizeString returns the logical size in asset-catalog notation: "60x60",
// or "83.5x83.5" for fractional point sizes. A trailing ".0" is never
// emitted.
func (s IconSpec) SizeString() string {
	p := strings.TrimSuffix(fmt.Sprintf("%.1f", s.Points), ".0")
	return p + "x" + p
}

// iosTable is the full set of renditions an iOS app bundle requires,
// largest first. The order is fixed: the manifest mirrors it and two runs
// over the same catalog must produce identical output.
var iosTable = [...]IconSpec{
	{1024, "appstore", IdiomMarketing, Scale1x, RoleNone, "", "App Store"},
	{60, "iphone_60pt@3x", IdiomIPhone, Scale3x, RolePrimary, "", "iPhone App Icon @3x"},
	{83.5, "ipad_83.5pt@2x", IdiomIPad, Scale2x, RolePrimary, "ipad-pro", "iPad Pro App Icon"},
	{76, "ipad_76pt@2x", IdiomIPad, Scale2x, RolePrimary, "", "iPad, iPad mini App Icon"},
	{60, "iphone_60pt@2x", IdiomIPhone, Scale2x, RolePrimary, "", "iPhone App Icon @2x"},
	{40, "iphone_40pt@3x", IdiomIPhone, Scale3x, RoleSpotlight, "", "iPhone Spotlight @3x"},
	{29, "iphone_29pt@3x", IdiomIPhone, Scale3x, RoleSettings, "", "iPhone Settings @3x"},
	{40, "iphone_40pt@2x", IdiomIPhone, Scale2x, RoleSpotlight, "", "iPhone Spotlight @2x"},
	{40, "ipad_40pt@2x", IdiomIPad, Scale2x, RoleSpotlight, "", "iPad Spotlight @2x"},
	{76, "ipad_76pt", IdiomIPad, Scale1x, RolePrimary, "", "iPad App Icon @1x"},
	{60, "iphone_60pt", IdiomIPhone, Scale1x, RolePrimary, "", "iPhone App Icon @1x"},
	{29, "iphone_29pt@2x", IdiomIPhone, Scale2x, RoleSettings, "", "iPhone Settings @2x"},
	{29, "ipad_29pt@2x", IdiomIPad, Scale2x, RoleSettings, "", "iPad Settings @2x"},
	{40, "iphone_40pt", IdiomIPhone, Scale1x, RoleSpotlight, "", "iPhone Spotlight @1x"},
	{40, "ipad_40pt", IdiomIPad, Scale1x, RoleSpotlight, "", "iPad Spotlight @1x"},
	{29, "iphone_29pt", IdiomIPhone, Scale1x, RoleSettings, "", "iPhone Settings @1x"},
	{29, "ipad_29pt", IdiomIPad, Scale1x, RoleSettings, "", "iPad Settings @1x"},
	{20, "iphone_20pt", IdiomIPhone, Scale1x, RoleNotification, "", "iPhone Notification @1x"},
	{20, "ipad_20pt", IdiomIPad, Scale1x, RoleNotification, "", "iPad Notification @1x"},
}

// IOS returns the ordered catalog of iOS icon renditions. The returned slice
// is a copy; callers may filter or reorder it without affecting other
// callers.
func IOS() []IconSpec {
	specs := make([]IconSpec, len(iosTable))
	copy(specs, iosTable[:])
	return specs
}
