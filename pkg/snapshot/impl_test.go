/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/docmodel/pkg/schema"
)

const testYAML = `
model:
  - _class: class:core.Class
    _id: class:test.Person
    extends: class:core.Doc
    domain: people
    attributes:
      name:
        _class: class:core.Type
        _default: noname
people:
  - _class: class:test.Person
    _id: p1
    name: A
    age: 30
notes:
  - _class: class:test.Note
    _id: n1
`

func TestRead(t *testing.T) {
	require := require.New(t)

	s, err := Read(strings.NewReader(testYAML))
	require.NoError(err)

	model := s.Model()
	require.Len(model, 1)
	d, err := schema.ClassFromContainer(model[0])
	require.NoError(err)
	require.Equal(schema.ClassRef("class:test.Person"), d.ID)
	require.Equal("people", d.Domain)
	require.Equal("noname", d.Attributes["name"].Default)

	require.Equal([]string{"notes", "people"}, s.DataDomains())
	data := s.Data()
	require.Len(data, 2)
	require.Equal(schema.DocRef("n1"), data[0].ID())
	require.Equal(30, data[1]["age"])

	t.Run("must be ok to read empty snapshot", func(t *testing.T) {
		s, err := Read(strings.NewReader(""))
		require.NoError(err)
		require.Empty(s)
	})

	t.Run("must be ok to read json", func(t *testing.T) {
		s, err := Read(strings.NewReader(`{"people": [{"_class": "class:test.Person", "_id": "p1"}]}`))
		require.NoError(err)
		require.Len(s["people"], 1)
	})

	t.Run("must be ok to write and read back", func(t *testing.T) {
		buf := bytes.Buffer{}
		require.NoError(s.Write(&buf))

		fn := filepath.Join(t.TempDir(), "snapshot.yaml")
		require.NoError(os.WriteFile(fn, buf.Bytes(), 0o600))

		s2, err := ReadFile(fn)
		require.NoError(err)
		require.Equal(s, s2)
	})
}

func TestReadErrors(t *testing.T) {
	require := require.New(t)

	_, err := Read(strings.NewReader("people: 42"))
	require.ErrorIs(err, schema.ErrConvert)

	_, err = Read(strings.NewReader("people:\n  - name: A\n"))
	require.ErrorIs(err, schema.ErrSchema)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missed.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}
