package tools

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) *funcTool {
	return &funcTool{
		info: &schema.ToolInfo{Name: name, Desc: name},
		fn: func(ctx context.Context, args string) (string, error) {
			return name + ":" + args, nil
		},
	}
}

func TestRegisterPreservesOrder(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	require.NoError(t, r.Register(ctx, echoTool("alpha"), "local"))
	require.NoError(t, r.Register(ctx, echoTool("beta"), "local"))
	require.NoError(t, r.Register(ctx, echoTool("gamma"), "local"))

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
	assert.Equal(t, 3, r.Len())

	specs := r.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, "alpha", specs[0].Name)
}

func TestRegisterDuplicateFails(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	require.NoError(t, r.Register(ctx, echoTool("alpha"), "local"))
	err := r.Register(ctx, echoTool("alpha"), "remote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate tool name "alpha"`)
}

func TestMergeCommutativeWithoutCollisions(t *testing.T) {
	ctx := context.Background()

	build := func(names ...string) *Registry {
		r := NewRegistry()
		for _, n := range names {
			require.NoError(t, r.Register(ctx, echoTool(n), "srv"))
		}
		return r
	}

	ab := build("a", "b")
	require.NoError(t, ab.Merge(build("c", "d")))

	cd := build("c", "d")
	require.NoError(t, cd.Merge(build("a", "b")))

	assert.ElementsMatch(t, ab.Names(), cd.Names())
	for _, name := range []string{"a", "b", "c", "d"} {
		_, ok := ab.Lookup(name)
		assert.True(t, ok)
		_, ok = cd.Lookup(name)
		assert.True(t, ok)
	}
}

func TestMergeCollisionFails(t *testing.T) {
	ctx := context.Background()

	a := NewRegistry()
	require.NoError(t, a.Register(ctx, echoTool("shared"), "math"))

	b := NewRegistry()
	require.NoError(t, b.Register(ctx, echoTool("shared"), "weather"))

	err := a.Merge(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate tool name "shared"`)
	assert.Contains(t, err.Error(), "math")
	assert.Contains(t, err.Error(), "weather")
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	require.NoError(t, r.Register(ctx, echoTool("echo"), "local"))

	assert.Equal(t, `echo:{"x":1}`, r.Execute(ctx, "echo", `{"x":1}`))

	got := r.Execute(ctx, "missing", `{}`)
	assert.Contains(t, got, `unknown tool "missing"`)
	assert.Contains(t, got, "echo")
}

func TestCalculatorTool(t *testing.T) {
	ctx := context.Background()
	c := NewCalculator()

	out, err := c.InvokableRun(ctx, `{"a":25,"b":17,"operation":"add"}`)
	require.NoError(t, err)
	assert.Equal(t, "25.0 + 17.0 = 42.0", out)

	out, err = c.InvokableRun(ctx, `{"a":1,"b":0,"operation":"divide"}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Cannot divide by zero", out)

	out, err = c.InvokableRun(ctx, `{"a":1,"b":2,"operation":"frobnicate"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Unknown operation: frobnicate")
}

func TestCalculatorToolAverageOfList(t *testing.T) {
	ctx := context.Background()
	c := NewCalculator()

	out, err := c.InvokableRun(ctx, `{"operation":"average","numbers":"1, 2, 3, 4"}`)
	require.NoError(t, err)
	assert.Equal(t, "2.5", out)

	// Without a list, the two operands are averaged.
	out, err = c.InvokableRun(ctx, `{"a":4,"b":6,"operation":"average"}`)
	require.NoError(t, err)
	assert.Equal(t, "5.0", out)

	out, err = c.InvokableRun(ctx, `{"operation":"average","numbers":"1, banana"}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Invalid number format. Use comma-separated numbers like '1,2,3,4'", out)
}

func TestCityInfoTool(t *testing.T) {
	ctx := context.Background()
	c := NewCityInfo()

	out, err := c.InvokableRun(ctx, `{"city_name":"chicago"}`)
	require.NoError(t, err)
	assert.Equal(t, "Chicago: Population: ~2.7M, Known for: Deep dish pizza, Architecture", out)

	out, err = c.InvokableRun(ctx, `{"city_name":"Gotham"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "City 'Gotham' not found")
	assert.Contains(t, out, "Denver")
}
