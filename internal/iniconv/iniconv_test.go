package iniconv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"Yes", true},
		{" ON ", true},
		{"false", false},
		{"NO", false},
		{"off", false},
		{"42", json.Number("42")},
		{"007", json.Number("7")},
		{"123456789012345678901234567890", json.Number("123456789012345678901234567890")},
		{"3.14", json.Number("3.14")},
		{"3.", json.Number("3.0")},
		{"10.50", json.Number("10.5")},
		{"0.0001", json.Number("0.0001")},
		{"12345678901234567.0", json.Number("1.2345678901234568e+16")},
		{"-5", "-5"},
		{".5", ".5"},
		{"1e5", "1e5"},
		{"1", json.Number("1")},
		{"hello world", "hello world"},
		{"  padded  ", "padded"},
		{"", ""},
		{"truthy", "truthy"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, InferType(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[DEFAULT]
Timeout = 30
region = eu

[server]
Host = example.com
port = 8080
debug = yes
ratio = 0.75

[client]
region = us
retries = 3
url = http://%(host)s:%(port)s/path
host = api.local
port = 9000
note = a # not a comment

[empty]
`)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"server", "client", "empty"}, doc.Keys())

	server, ok := doc.Get("server")
	require.True(t, ok)
	assert.Equal(t, Object{
		{Key: "timeout", Value: json.Number("30")},
		{Key: "region", Value: "eu"},
		{Key: "host", Value: "example.com"},
		{Key: "port", Value: json.Number("8080")},
		{Key: "debug", Value: true},
		{Key: "ratio", Value: json.Number("0.75")},
	}, server)

	client, ok := doc.Get("client")
	require.True(t, ok)
	obj := client.(Object)
	assert.Equal(t, []string{"timeout", "region", "retries", "url", "host", "port", "note"}, obj.Keys())
	region, _ := obj.Get("region")
	assert.Equal(t, "us", region)
	url, _ := obj.Get("url")
	assert.Equal(t, "http://api.local:9000/path", url)
	note, _ := obj.Get("note")
	assert.Equal(t, "a # not a comment", note)

	empty, ok := doc.Get("empty")
	require.True(t, ok)
	assert.Equal(t, []string{"timeout", "region"}, empty.(Object).Keys())
}

func TestToJSON(t *testing.T) {
	data := []byte("[app]\nname = <demo>\nenabled = on\nworkers = 4\nscale = 1.5\n\n[paths]\nroot = /srv\n")

	out, sections, err := ToJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, sections)

	want := `{
  "app": {
    "name": "<demo>",
    "enabled": true,
    "workers": 4,
    "scale": 1.5
  },
  "paths": {
    "root": "/srv"
  }
}
`
	assert.Equal(t, want, string(out))
}

func TestToJSON_PercentEscape(t *testing.T) {
	data := []byte("[DEFAULT]\nunit = %%\n\n[limits]\nPct = 50%%\n")

	doc, err := Parse(data)
	require.NoError(t, err)

	limits, ok := doc.Get("limits")
	require.True(t, ok)
	obj := limits.(Object)

	pct, _ := obj.Get("pct")
	assert.Equal(t, "50%", pct)
	unit, _ := obj.Get("unit")
	assert.Equal(t, "%", unit)
}

func TestToJSON_NoSections(t *testing.T) {
	out, sections, err := ToJSON([]byte("orphan = 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, sections)
	assert.Equal(t, "{}\n", string(out))
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "eg.ini")
	output := filepath.Join(dir, "eg.json")
	require.NoError(t, os.WriteFile(input, []byte("[db]\nuser = admin\nport = 5432\nssl = false\n"), 0o644))

	sections, err := Convert(input, output)
	require.NoError(t, err)
	assert.Equal(t, 1, sections)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]map[string]any{
		"db": {"user": "admin", "port": float64(5432), "ssl": false},
	}, got)
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		_, err := Convert(filepath.Join(dir, "missing.ini"), filepath.Join(dir, "out.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unwritable output", func(t *testing.T) {
		input := filepath.Join(dir, "ok.ini")
		require.NoError(t, os.WriteFile(input, []byte("[a]\nb = c\n"), 0o644))

		_, err := Convert(input, filepath.Join(dir, "no", "such", "dir", "out.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write json file")
	})
}

func TestObject_Set(t *testing.T) {
	var o Object
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, ok := o.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = o.Get("missing")
	assert.False(t, ok)

	raw, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"b":2}`, string(raw))
}
