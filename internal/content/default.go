// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultDocument []byte

var (
	defaultOnce    sync.Once
	defaultContent *AppContent
	defaultErr     error
)

// Default returns a fresh copy of the built-in content.
//
// The embedded document is parsed once. It is covered by tests, so a parse
// failure here is a build defect and panics.
func Default() *AppContent {
	defaultOnce.Do(func() {
		defaultContent, defaultErr = ParseYAML(defaultDocument)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultContent.Clone()
}

// ParseYAML decodes a YAML content document and validates it.
// Unknown keys are rejected.
func ParseYAML(raw []byte) (*AppContent, error) {
	var doc AppContent

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("content: decode yaml: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("content: invalid document: %w", err)
	}
	return &doc, nil
}
