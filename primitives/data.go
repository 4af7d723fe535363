// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package primitives holds the small named-value record used by the demo
// programs.
package primitives

import "fmt"

// Data is a named integer value.
type Data struct {
	Name  string
	Value int
}

// NewData creates a Data with an explicit name and value.
func NewData(name string, value int) *Data {
	return &Data{Name: name, Value: value}
}

// FromName creates a Data with the given name and a zero value.
func FromName(name string) *Data {
	return &Data{Name: name}
}

// FromValues creates a Data with an explicit name and value.
func FromValues(name string, value int) *Data {
	return &Data{Name: name, Value: value}
}

// String returns "name: value".
func (d *Data) String() string {
	return fmt.Sprintf("%s: %d", d.Name, d.Value)
}
