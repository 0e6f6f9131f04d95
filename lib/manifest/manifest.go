// Copyright 2026 The Appicongen Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package manifest writes the Contents.json descriptor that the asset
// packaging toolchain reads alongside the generated icon files.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/appicongen/appicongen/lib/catalog"
)

// Name is the fixed manifest filename inside the icon set directory.
const Name = "Contents.json"

// Author is the tool identifier recorded in the manifest's info block.
const Author = "appicongen"

// Image is one per-icon descriptor. Role and Subgroup are omitted when
// absent; the manifest consumer's schema expects missing keys, not nulls.
type Image struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
	Role     string `json:"role,omitempty"`
	Subgroup string `json:"subgroup,omitempty"`
}

// Info is the fixed metadata block.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Document is the manifest's top-level JSON shape.
type Document struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Build constructs the manifest document for specs. The images list mirrors
// the catalog order, one descriptor per entry.
func Build(specs []catalog.IconSpec) Document {
	doc := Document{
		Images: make([]Image, 0, len(specs)),
		Info:   Info{Version: 1, Author: Author},
	}
	for _, spec := range specs {
		doc.Images = append(doc.Images, Image{
			Size:     spec.SizeString(),
			Idiom:    spec.Idiom.String(),
			Filename: spec.Filename(),
			Scale:    spec.Scale.String(),
			Role:     spec.Role.String(),
			Subgroup: spec.Subgroup,
		})
	}
	return doc
}

// Write serializes the manifest for specs into outDir and returns the
// written path. Serialization is deterministic: identical specs always
// produce byte-identical files.
func Write(specs []catalog.IconSpec, outDir string) (string, error) {
	data, err := json.MarshalIndent(Build(specs), "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, Name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
