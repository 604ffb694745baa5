package queryknot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `user.name "Cansu"
user.age 25
user.location "Istanbul"
conversation.topics ["politics" "sports" "technology"]
`

func TestParseToMap_Sample(t *testing.T) {
	m, err := ParseToMap(sampleDoc)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"user": map[string]any{
			"name":     "Cansu",
			"age":      int64(25),
			"location": "Istanbul",
		},
		"conversation": map[string]any{
			"topics": []any{"politics", "sports", "technology"},
		},
	}, m)
}

func TestParseToMap_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n  \n"} {
		m, err := ParseToMap(input)
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, m)
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	doc, err := Parse("a 1\n\n   \nb 2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())
}

func TestParse_OrderPreserved(t *testing.T) {
	doc, err := Parse("z 1\na 2\nm 3")
	require.NoError(t, err)

	paths := make([]string, 0, doc.Len())
	for _, e := range doc.Entries() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"z", "a", "m"}, paths)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing value",
			input: "a 1\nb.c\n",
			check: func(t *testing.T, err error) {
				var e *MalformedLineError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 2, e.Line)
				assert.Equal(t, "b.c", e.Text)
			},
		},
		{
			name:  "empty path segment",
			input: "a..b 1",
			check: func(t *testing.T, err error) {
				var e *MalformedLineError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 1, e.Line)
			},
		},
		{
			name:  "bare literal",
			input: "a.b.c test",
			check: func(t *testing.T, err error) {
				var e *UnrecognizedLiteralError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 1, e.Line)
				assert.Equal(t, "test", e.Literal)
			},
		},
		{
			name:  "two values on one line",
			input: "a.b.c 1 2",
			check: func(t *testing.T, err error) {
				var e *UnrecognizedLiteralError
				require.ErrorAs(t, err, &e)
			},
		},
		{
			name:  "unterminated string",
			input: "a 1\nb \"open\n",
			check: func(t *testing.T, err error) {
				var e *UnterminatedStringError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 2, e.Line)
			},
		},
		{
			name:  "nested collection",
			input: `topics [["a"] "b"]`,
			check: func(t *testing.T, err error) {
				var e *NestedCollectionError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 1, e.Line)
			},
		},
		{
			name:  "duplicate path",
			input: "user.name \"A\"\nuser.name \"B\"\n",
			check: func(t *testing.T, err error) {
				var e *DuplicatePathError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 2, e.Line)
				assert.Equal(t, "user.name", e.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToMap(tt.input)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestParseToMap_PathConflict(t *testing.T) {
	_, err := ParseToMap("a \"x\"\na.b \"y\"\n")
	var conflict *PathConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "a.b", conflict.Path)
	assert.Equal(t, "a", conflict.Prefix)
	assert.Equal(t, 2, conflict.Line)
}

func TestSerialize_Sample(t *testing.T) {
	text, err := Serialize(map[string]any{
		"topics": []string{"Python", "AI-enabled applications"},
	})
	require.NoError(t, err)
	assert.Equal(t, "topics [\"Python\" \"AI-enabled applications\"]\n", text)
}

func TestSerialize_DocumentOrder(t *testing.T) {
	doc, err := Parse(sampleDoc)
	require.NoError(t, err)

	text, err := Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, sampleDoc, text)
}

func TestSerialize_Empty(t *testing.T) {
	text, err := Serialize(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestSerialize_NestedSliceRejected(t *testing.T) {
	_, err := Serialize(map[string]any{
		"topics": []any{[]any{"a"}, "b"},
	})
	var nested *NestedCollectionError
	require.ErrorAs(t, err, &nested)
}

func TestSerialize_UnsupportedInput(t *testing.T) {
	_, err := Serialize(42)
	assert.Error(t, err)
	_, err = Serialize(nil)
	assert.Error(t, err)
}

func TestSerialize_TypedNil(t *testing.T) {
	_, err := Serialize((*Document)(nil))
	assert.ErrorContains(t, err, "cannot serialize nil")
	_, err = Serialize((*Node)(nil))
	assert.ErrorContains(t, err, "cannot serialize nil")
	_, err = Serialize((*Object)(nil))
	assert.ErrorContains(t, err, "cannot serialize nil")
}

func TestSerialize_NonFiniteFloatRejected(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Serialize(map[string]any{"x": f})
		var unrecognized *UnrecognizedLiteralError
		require.ErrorAs(t, err, &unrecognized, "float %v", f)
	}
}

// parse(serialize(D)) == D, structurally and in order.
func TestRoundTrip_Document(t *testing.T) {
	doc, err := Parse(sampleDoc)
	require.NoError(t, err)

	text, err := Serialize(doc)
	require.NoError(t, err)

	again, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, doc.Equal(again))
}

// serialize(parse(serialize(D))) == serialize(D).
func TestRoundTrip_Idempotence(t *testing.T) {
	inputs := []string{
		sampleDoc,
		"a 1\n",
		"x.y.z [1, 2, 3]\n",      // commas normalize away
		"pi   3.14159\n",         // spacing normalizes
		"flag true\nname \"n\"\n",
	}

	for _, input := range inputs {
		doc, err := Parse(input)
		require.NoError(t, err, "input %q", input)

		first, err := Serialize(doc)
		require.NoError(t, err)

		reparsed, err := Parse(first)
		require.NoError(t, err)

		second, err := Serialize(reparsed)
		require.NoError(t, err)
		assert.Equal(t, first, second, "serialization is not idempotent for %q", input)
	}
}

func TestParse_CRLFInput(t *testing.T) {
	m, err := ParseToMap("a 1\r\nb 2\r\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(2)}, m)
}
