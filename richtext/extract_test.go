package richtext_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/richtext"
)

func TestExtractPlainTextFromTree(t *testing.T) {
	doc := richtext.Group(
		richtext.Group(richtext.Text("Hello"), richtext.Text("world")),
		richtext.Group(),
		richtext.Text(""),
		richtext.Group(richtext.Group(richtext.Text("deep"))),
	)
	assert.Equal(t, "Hello world deep", richtext.ExtractNode(doc))
}

func TestExtractPlainTextFromHTML(t *testing.T) {
	c := richtext.FromHTML("  <p>Caf&eacute; <b>com</b> leite</p><script>alert(1)</script>  ")
	assert.Equal(t, "Café com leite", richtext.ExtractPlainText(c))
}

func TestExtractPlainTextEmpty(t *testing.T) {
	assert.Equal(t, "", richtext.ExtractPlainText(richtext.Content{}))
	assert.Equal(t, "", richtext.ExtractNode(nil))
}

func TestExtractStopsAtMaxDepth(t *testing.T) {
	var n richtext.Node = richtext.Text("bottom")
	for i := 0; i < richtext.MaxDepth+10; i++ {
		n = richtext.Group(n)
	}
	assert.Equal(t, "", richtext.ExtractNode(n))

	shallow := richtext.Group(richtext.Group(richtext.Text("ok")))
	assert.Equal(t, "ok", richtext.ExtractNode(shallow))
}

func TestExtractTerminatesOnCycle(t *testing.T) {
	b := richtext.Branch{Children: make([]richtext.Node, 2)}
	b.Children[0] = richtext.Text("loop")
	b.Children[1] = b
	got := richtext.ExtractNode(b)
	assert.Contains(t, got, "loop")
}

func TestContentUnmarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"html string", `"<p>Olá mundo</p>"`, "Olá mundo"},
		{"root object", `{"root":{"type":"root","children":[{"type":"paragraph","children":[{"text":"Primeiro"},{"text":"parágrafo"}]}]}}`, "Primeiro parágrafo"},
		{"children object", `{"children":[{"text":"a"},{"children":[{"text":"b"}]}]}`, "a b"},
		{"text object", `{"text":"só texto"}`, "só texto"},
		{"array", `[{"text":"x"},{"text":"y"}]`, "x y"},
		{"junk members", `{"children":[1,true,{"type":"image"},{"text":"z"}]}`, "z"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c richtext.Content
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &c))
			assert.Equal(t, tt.want, richtext.ExtractPlainText(c))
		})
	}
}

func TestContentJSONRoundTrip(t *testing.T) {
	in := richtext.FromNode(richtext.Group(richtext.Text("um"), richtext.Group(richtext.Text("dois"))))
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"root":{"children":[{"text":"um"},{"children":[{"text":"dois"}]}]}}`, string(data))

	var out richtext.Content
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Root, out.Root)
}
