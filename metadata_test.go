package actionlog

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValue_String(t *testing.T) {
	assert.Equal(t, "deploy", StringValue("deploy").String())
	assert.Equal(t, "", StringValue("").String())

	v := GroupValue(map[string]Value{
		"zone": StringValue("eu"),
		"id":   StringValue("42"),
	})
	assert.Equal(t, "[id: 42, zone: eu]", v.String())

	nested := GroupValue(map[string]Value{
		"b": StringValue("2"),
		"a": GroupValue(map[string]Value{"x": StringValue("1")}),
	})
	assert.Equal(t, "[a: [x: 1], b: 2]", nested.String())

	assert.Equal(t, "[]", GroupValue(nil).String())
}

func TestValue_IsGroup(t *testing.T) {
	assert.False(t, StringValue("x").IsGroup())
	assert.True(t, GroupValue(nil).IsGroup())
}

func TestGroupValue_copies(t *testing.T) {
	m := map[string]Value{"a": StringValue("1")}
	v := GroupValue(m)
	m["a"] = StringValue("2")
	m["b"] = StringValue("3")
	assert.Equal(t, "[a: 1]", v.String())
}

func TestMetadata_Clone(t *testing.T) {
	m := Metadata{"a": StringValue("1")}
	c := m.Clone()
	c["a"] = StringValue("2")
	c["b"] = StringValue("3")
	assert.Equal(t, StringValue("1"), m["a"])
	assert.Len(t, m, 1)
}

func TestValueFromSlog(t *testing.T) {
	assert.Equal(t, "hello", valueFromSlog(slog.StringValue("hello")).String())
	assert.Equal(t, "42", valueFromSlog(slog.IntValue(42)).String())
	assert.Equal(t, "true", valueFromSlog(slog.BoolValue(true)).String())
	assert.Equal(t, "1s",
		valueFromSlog(slog.DurationValue(time.Second)).String())

	g := valueFromSlog(slog.GroupValue(
		slog.String("zone", "eu"), slog.Int("id", 42)))
	assert.True(t, g.IsGroup())
	assert.Equal(t, "[id: 42, zone: eu]", g.String())
}

type loggedToken struct{ s string }

func (v loggedToken) LogValue() slog.Value { return slog.StringValue(v.s) }

func TestValueFromSlog_resolve(t *testing.T) {
	v := valueFromSlog(slog.AnyValue(loggedToken{"se-cret"}))
	assert.Equal(t, "se-cret", v.String())
}

func TestMergeAttrs(t *testing.T) {
	d := map[string]Value{}
	mergeAttrs(d, []slog.Attr{
		slog.String("a", "1"),
		{},
		slog.Group("empty"),
		slog.Group("", slog.String("b", "2")),
		slog.Group("g", slog.String("c", "3")),
	})
	assert.Equal(t, map[string]Value{
		"a": StringValue("1"),
		"b": StringValue("2"),
		"g": GroupValue(map[string]Value{"c": StringValue("3")}),
	}, d)
}
