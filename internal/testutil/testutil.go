// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
)

//go:embed testdata
var testdata embed.FS

// Graph returns the text of the fixture graph testdata/<name>.txt.
// It panics if the fixture does not exist.
func Graph(name string) string {
	data, err := testdata.ReadFile(path.Join("testdata", name+".txt"))
	if err != nil {
		panic(fmt.Sprintf("testutil: fixture %q: %v", name, err))
	}
	return string(data)
}

// Graphs returns the names of all the fixture graphs, in lexicographic order.
func Graphs() []string {
	ents, err := testdata.ReadDir("testdata")
	if err != nil {
		panic(err)
	}
	var names []string
	for _, e := range ents {
		if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Golden returns the expected JSON rendering of the fixture graph with the
// given name, read from testdata/<name>.hujson and converted to standard JSON.
func Golden(name string) ([]byte, error) {
	data, err := testdata.ReadFile(path.Join("testdata", name+".hujson"))
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("golden %q: %w", name, err)
	}
	return std, nil
}
