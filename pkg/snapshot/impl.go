/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/voedger/docmodel/pkg/schema"
)

// Reads snapshot from YAML file. JSON is valid YAML, so JSON files are read too
func ReadFile(fileName string) (Snapshot, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	s, err := Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", fileName, err)
	}
	return s, nil
}

// Reads snapshot from YAML stream
func Read(r io.Reader) (Snapshot, error) {
	raw := make(map[string][]map[string]any)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, schema.EnrichError(schema.ErrConvert, "%v", err)
	}
	s := make(Snapshot, len(raw))
	for domain, list := range raw {
		docs := make([]schema.Container, 0, len(list))
		for n, m := range list {
			c := schema.Container(m)
			if c.ID() == "" {
				return nil, schema.EnrichError(schema.ErrSchema, "domain «%s» document #%d without «%s»", domain, n, schema.Field_ID)
			}
			docs = append(docs, c)
		}
		s[domain] = docs
	}
	return s, nil
}

// Writes snapshot as YAML
func (s Snapshot) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	raw := make(map[string][]map[string]any, len(s))
	for domain, list := range s {
		docs := make([]map[string]any, len(list))
		for n, c := range list {
			docs[n] = c
		}
		raw[domain] = docs
	}
	if err := enc.Encode(raw); err != nil {
		return err
	}
	return enc.Close()
}

// Returns model domain documents
func (s Snapshot) Model() []schema.Container {
	return s[schema.DomainModel]
}

// Returns names of domains except model, sorted
func (s Snapshot) DataDomains() []string {
	res := make([]string, 0, len(s))
	for _, d := range maps.Keys(s) {
		if d != schema.DomainModel {
			res = append(res, d)
		}
	}
	slices.Sort(res)
	return res
}

// Returns documents of all domains except model, domains in sorted order
func (s Snapshot) Data() []schema.Container {
	res := make([]schema.Container, 0)
	for _, d := range s.DataDomains() {
		res = append(res, s[d]...)
	}
	return res
}
