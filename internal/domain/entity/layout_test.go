package entity

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrList_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringOrList
	}{
		{name: "single string", raw: `"abc"`, want: StringOrList{"abc"}},
		{name: "list", raw: `["a","b"]`, want: StringOrList{"a", "b"}},
		{name: "null", raw: `null`, want: nil},
		{name: "empty list", raw: `[]`, want: StringOrList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringOrList
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad StringOrList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestLayoutNode_JSONFieldNames(t *testing.T) {
	ratio := 0.25
	order := 1
	group := "g"
	node := &LayoutNode{
		Type:           LayoutTypeNotebook,
		Order:          &order,
		Ratio:          &ratio,
		Group:          &group,
		LastActiveTerm: StringOrList{"x"},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"notebook","order":1,"ratio":0.25,"group":"g","last_active_term":["x"]}`, string(data))

	var decoded LayoutNode
	require.NoError(t, json.Unmarshal([]byte(`{"type":"terminal","group":null}`), &decoded))
	assert.Nil(t, decoded.Group)
	assert.Equal(t, "", decoded.LastActiveTerm.At(3))
}

func TestLayoutNode_UnmarshalRecordsMalformedFields(t *testing.T) {
	raw := `{"type":"notebook","active_page":"first","labels":["a"],"children":[null,{"type":"terminal","group":7},"x"]}`

	var node LayoutNode
	require.NoError(t, json.Unmarshal([]byte(raw), &node))
	assert.Equal(t, LayoutTypeNotebook, node.Type)
	assert.Nil(t, node.ActivePage)
	assert.Equal(t, []string{"a"}, node.Labels)
	assert.Equal(t, []string{`invalid active_page "first"`}, node.Malformed)

	require.Len(t, node.Children, 3)
	assert.Nil(t, node.Children[0])
	assert.Equal(t, []string{"invalid group 7"}, node.Children[1].Malformed)
	assert.Nil(t, node.Children[1].Group)
	assert.Equal(t, []string{`expected an object, got "x"`}, node.Children[2].Malformed)
}

func TestWindowMeta_UnmarshalRecordsMalformedFields(t *testing.T) {
	var meta WindowMeta
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","position":[1,"b"]}`), &meta))
	assert.Equal(t, "t", meta.Title)
	assert.Nil(t, meta.Position)
	assert.Equal(t, []string{`invalid position [1,"b"]`}, meta.Malformed)
}
