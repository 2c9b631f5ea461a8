package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semshape/manifest"
	"github.com/c360studio/semshape/metric"
	"github.com/c360studio/semshape/shape"
)

const testManifest = `
prefixes:
  ex: https://example.org/
ontology:
  classes:
    - iri: ex:Person
shapes:
  - targetClass: ex:Person
    properties:
      email:
        path: ex:email
        datatype: xsd:string
        minCount: 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", "{}")
	writeFile(t, dir, "b.json", "{}")
	writeFile(t, dir, "c.txt", "")

	files, err := expandGlobs([]string{filepath.Join(dir, "*.json")})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.json", filepath.Base(files[0]))

	// Duplicate patterns collapse.
	files, err = expandGlobs([]string{
		filepath.Join(dir, "*.json"),
		filepath.Join(dir, "a.json"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	// Missing literal paths drop out; the empty set is the caller's problem.
	files, err = expandGlobs([]string{filepath.Join(dir, "missing.json")})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDecodeRecords(t *testing.T) {
	records, err := decodeRecords([]byte(`{"@type": "ex:Person"}`))
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = decodeRecords([]byte(`[{"a": 1}, {"b": 2}]`))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = decodeRecords([]byte(`{not json`))
	assert.Error(t, err)
}

func TestRecordType(t *testing.T) {
	assert.Equal(t, "ex:Person", recordType(map[string]any{"@type": "ex:Person"}))
	assert.Equal(t, "ex:Person", recordType(map[string]any{"@type": []any{"ex:Person", "ex:Agent"}}))
	assert.Equal(t, "", recordType(map[string]any{}))
	assert.Equal(t, "", recordType("not an object"))
}

func TestValidateFiles(t *testing.T) {
	m, err := manifest.Parse([]byte(testManifest))
	require.NoError(t, err)

	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"@type": "ex:Person", "email": "a@b.com"}`)
	bad := writeFile(t, dir, "bad.json", `[{"@type": "ex:Person"}, {"@type": "ex:Person", "email": "c@d.com"}]`)
	untyped := writeFile(t, dir, "untyped.json", `{"email": "e@f.com"}`)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r, err := validateFiles(logger, m, []string{good, bad, untyped}, "", metric.NewMetrics())
	require.NoError(t, err)

	// The untyped record is skipped, the array file contributes two entries.
	require.Len(t, r.Entries, 3)
	assert.False(t, r.OK())

	s := r.Summarize()
	assert.Equal(t, 2, s.Conforming)
	assert.Equal(t, 1, s.ByCode[string(shape.CodeCardinalityRequired)])
}

func TestValidateFilesForcedShape(t *testing.T) {
	m, err := manifest.Parse([]byte(testManifest))
	require.NoError(t, err)

	dir := t.TempDir()
	// No @type, but the forced class still routes it to the Person shape.
	// The type membership check does not run when @type is absent.
	path := writeFile(t, dir, "data.json", `{"email": "a@b.com"}`)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r, err := validateFiles(logger, m, []string{path}, "ex:Person", metric.NewMetrics())
	require.NoError(t, err)

	require.Len(t, r.Entries, 1)
	assert.True(t, r.OK())
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeFile(t, dir, "shapes.yaml", testManifest)
	outPath := filepath.Join(dir, "out.ttl")

	require.NoError(t, runExport(manifestPath, "turtle", outPath))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "sh:targetClass ex:Person")

	assert.Error(t, runExport(manifestPath, "rdfxml", ""))
	assert.Error(t, runExport(filepath.Join(dir, "missing.yaml"), "turtle", ""))
}
