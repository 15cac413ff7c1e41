package api

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutTable(t *testing.T) {
	var buf bytes.Buffer
	saved := Output
	Output = &buf
	defer func() {
		Output = saved
	}()

	items := []struct {
		Name  string
		Count int
	}{{"a", 1}, {"bb", 22}}
	tmpl := `{{ps -4 "name"}}|{{ps 3 "n"}}
{{- range . }}
{{ps -4 .Name}}|{{pi 3 .Count}}
{{- end }}
`
	assert.Nil(t, Out(items, "table", tmpl))
	assert.Equal(t, "name|  n\na   |  1\nbb  | 22\n", buf.String(), "be the same.")

	buf.Reset()
	assert.Nil(t, Out(items[0], "json", ""))
	assert.Equal(t, "{\n  \"Name\": \"a\",\n  \"Count\": 1\n}\n", buf.String(), "be the same.")

	buf.Reset()
	assert.Nil(t, Out(items[0], "yaml", ""))
	assert.Equal(t, "Count: 1\nName: a\n\n", buf.String(), "be the same.")

	buf.Reset()
	assert.NotNil(t, Out(items, "table", "{{ .Missing"))
}

func TestSplitPair(t *testing.T) {
	k, v := SplitPair("version=7=1")
	assert.Equal(t, "version", k)
	assert.Equal(t, "7=1", v)
	k, v = SplitPair("bare")
	assert.Equal(t, "bare", k)
	assert.Equal(t, "", v)
}
