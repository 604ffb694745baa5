package queryknot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindUser struct {
	Name     string   `knot:"name"`
	Age      int      `knot:"age"`
	Location string   // derives "location"
	Premium  bool     `knot:"is_premium_member"`
	Hobbies  []string `knot:"hobbies"`
	Score    float64  `knot:"score,omitempty"`
	Internal string   `knot:"-"`
}

type bindProfile struct {
	User     bindUser       `knot:"user"`
	Settings map[string]any `knot:"settings"`
}

func TestUnmarshal_Struct(t *testing.T) {
	text := `user.name "John Doe"
user.age 25
user.location "Istanbul"
user.is_premium_member true
user.hobbies ["coding" "reading"]
settings.theme "dark"
`

	var p bindProfile
	require.NoError(t, Unmarshal(text, &p))

	assert.Equal(t, "John Doe", p.User.Name)
	assert.Equal(t, 25, p.User.Age)
	assert.Equal(t, "Istanbul", p.User.Location)
	assert.True(t, p.User.Premium)
	assert.Equal(t, []string{"coding", "reading"}, p.User.Hobbies)
	assert.Zero(t, p.User.Score, "missing path leaves zero value")
	assert.Equal(t, map[string]any{"theme": "dark"}, p.Settings)
}

func TestUnmarshal_SnakeCaseDerivation(t *testing.T) {
	var out struct {
		MaxTokens int
	}
	require.NoError(t, Unmarshal("max_tokens 512\n", &out))
	assert.Equal(t, 512, out.MaxTokens)
}

func TestUnmarshal_Errors(t *testing.T) {
	var p bindProfile
	assert.Error(t, Unmarshal("user.age \"not a number\"\n", &p))
	assert.Error(t, Unmarshal(`user.name 1`, &p))

	var notPtr bindProfile
	assert.Error(t, Unmarshal("user.age 1\n", notPtr))

	// Parse errors pass through typed.
	err := Unmarshal("user.age\n", &p)
	var malformed *MalformedLineError
	assert.ErrorAs(t, err, &malformed)
}

func TestUnmarshal_UintSlice(t *testing.T) {
	var out struct {
		Ports []uint `knot:"ports"`
	}
	require.NoError(t, Unmarshal("ports [80 443 8080]\n", &out))
	assert.Equal(t, []uint{80, 443, 8080}, out.Ports)

	assert.Error(t, Unmarshal("ports [-1]\n", &out), "negative value must not wrap")
}

func TestUnmarshal_MapFieldFromLeaf(t *testing.T) {
	var p bindProfile
	err := Unmarshal("settings 1\n", &p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "cannot assign int value")
}

func TestUnmarshal_Map(t *testing.T) {
	var m map[string]any
	require.NoError(t, Unmarshal("a.b 1\n", &m))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": int64(1)}}, m)
}

func TestMarshal_Struct(t *testing.T) {
	p := bindProfile{
		User: bindUser{
			Name:     "John Doe",
			Age:      25,
			Location: "Istanbul",
			Premium:  true,
			Hobbies:  []string{"coding", "reading"},
			Internal: "never serialized",
		},
		Settings: map[string]any{"theme": "dark"},
	}

	text, err := Marshal(p)
	require.NoError(t, err)

	expected := `settings.theme "dark"
user.age 25
user.hobbies ["coding" "reading"]
user.is_premium_member true
user.location "Istanbul"
user.name "John Doe"
`
	assert.Equal(t, expected, text)
}

func TestMarshal_Omitempty(t *testing.T) {
	text, err := Marshal(bindUser{Name: "n", Hobbies: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, text, "score")
}

func TestMarshal_NestedSliceRejected(t *testing.T) {
	_, err := Marshal(struct {
		Grid [][]int `knot:"grid"`
	}{Grid: [][]int{{1}}})
	var nested *NestedCollectionError
	require.ErrorAs(t, err, &nested)
}

func TestBind_RoundTrip(t *testing.T) {
	in := bindProfile{
		User: bindUser{
			Name:    "Cansu",
			Age:     25,
			Premium: true,
			Hobbies: []string{"esports"},
			Score:   9.5,
		},
		Settings: map[string]any{"theme": "dark"},
	}

	text, err := Marshal(in)
	require.NoError(t, err)

	var out bindProfile
	require.NoError(t, Unmarshal(text, &out))

	in.User.Internal = ""
	assert.Equal(t, in, out)
}
