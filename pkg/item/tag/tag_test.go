package tag

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundGetters(t *testing.T) {
	c := Compound{
		"byte":  uint8(3),
		"short": int16(-2),
		"int":   int32(70000),
		"long":  int64(1 << 40),
		"str":   "hi",
		"child": map[string]any{"x": int32(1)},
		"list":  []any{map[string]any{"a": uint8(1)}, "skip", map[string]any{"a": uint8(2)}},
		"lore":  []any{"a", uint8(1), "b"},
	}

	i, ok := c.Int("byte")
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	i, _ = c.Int("short")
	assert.Equal(t, -2, i)
	i, _ = c.Int("int")
	assert.Equal(t, 70000, i)
	l, _ := c.Int64("long")
	assert.Equal(t, int64(1<<40), l)

	_, ok = c.Int("str")
	assert.False(t, ok)
	_, ok = c.Int("missing")
	assert.False(t, ok)

	b, ok := c.Bool("byte")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := c.String("str")
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	child, ok := c.Compound("child")
	require.True(t, ok)
	x, _ := child.Int("x")
	assert.Equal(t, 1, x)

	list, ok := c.List("list")
	require.True(t, ok)
	assert.Len(t, list, 2)

	lore, ok := c.Strings("lore")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lore)

	_, ok = c.List("str")
	assert.False(t, ok)
}

func TestReadWrite(t *testing.T) {
	c := Compound{
		"a":    uint8(1),
		"b":    int32(20),
		"s":    "text",
		"list": []Compound{{"id": uint8(2)}},
		"lore": []string{"x", "y"},
	}
	buf := new(bytes.Buffer)
	require.NoError(t, c.Write(buf))

	got, err := Read(buf)
	require.NoError(t, err, spew.Sdump(c))

	a, _ := got.Int("a")
	assert.Equal(t, 1, a)
	bv, _ := got.Int("b")
	assert.Equal(t, 20, bv)
	s, _ := got.String("s")
	assert.Equal(t, "text", s)
	list, ok := got.List("list")
	require.True(t, ok)
	require.Len(t, list, 1)
	id, _ := list[0].Int("id")
	assert.Equal(t, 2, id)
	lore, _ := got.Strings("lore")
	assert.Equal(t, []string{"x", "y"}, lore)
}

func TestSNBT(t *testing.T) {
	c, err := ParseSNBT(`{Id:1b,Duration:200,Name:"Swift",List:[{a:1b}]}`)
	require.NoError(t, err)
	t.Log(spew.Sdump(c))

	id, _ := c.Int("Id")
	assert.Equal(t, 1, id)
	d, _ := c.Int("Duration")
	assert.Equal(t, 200, d)
	name, _ := c.String("Name")
	assert.Equal(t, "Swift", name)
	list, _ := c.List("List")
	assert.Len(t, list, 1)

	s, err := ToSNBT(Compound{"Duration": int32(200)})
	require.NoError(t, err)
	assert.Contains(t, s, "Duration")
	assert.Contains(t, s, "200")

	// back and forth
	s, err = ToSNBT(c)
	require.NoError(t, err)
	again, err := ParseSNBT(s)
	require.NoError(t, err)
	d, _ = again.Int("Duration")
	assert.Equal(t, 200, d)
}

func TestParseSNBTUnsignedBytes(t *testing.T) {
	c, err := ParseSNBT(`{Id:200b,Neg:-56B,Small:127b,Name:"255B",128b:2b}`)
	require.NoError(t, err)

	id, _ := c.Int("Id")
	assert.Equal(t, 200, id)
	neg, _ := c.Int("Neg")
	assert.Equal(t, 200, neg, "signed and unsigned literals denote the same byte")
	small, _ := c.Int("Small")
	assert.Equal(t, 127, small)
	name, _ := c.String("Name")
	assert.Equal(t, "255B", name, "quoted strings are kept")
	key, _ := c.Int("128b")
	assert.Equal(t, 2, key, "keys are kept")

	_, err = ParseSNBT(`{Id:256b}`)
	assert.Error(t, err)
}

func TestSignBytes(t *testing.T) {
	for in, want := range map[string]string{
		`{a:200B}`:          `{a:-56B}`,
		`{a:127B,b:128b}`:   `{a:127B,b:-128b}`,
		`{a:"200B"}`:        `{a:"200B"}`,
		`{200B:1B}`:         `{200B:1B}`,
		`{a:[B;255B,0B]}`:   `{a:[B;-1B,0B]}`,
		`{a:2000B}`:         `{a:2000B}`,
		`{a:200s,b:200}`:    `{a:200s,b:200}`,
		`{a:"x\"200B\""}`: `{a:"x\"200B\""}`,
	} {
		assert.Equal(t, want, signBytes(in), in)
	}
}

func TestParseSNBTInvalid(t *testing.T) {
	for _, s := range []string{"", "1b", `"text"`, "[1,2]"} {
		_, err := ParseSNBT(s)
		assert.Error(t, err, s)
	}
}

func TestToJSON(t *testing.T) {
	j, err := ToJSON(Compound{"b": uint8(1), "a": "x", "l": []string{"y"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":1,"l":["y"]}`, string(j))
}

func TestToYAML(t *testing.T) {
	y, err := ToYAML(Compound{"a": int32(1)})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(y))
}
