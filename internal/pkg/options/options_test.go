package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelOptionsValidate(t *testing.T) {
	o := NewModelOptions()
	o.APIKey = "${KESTREL_TEST_ABSENT_KEY}"
	errs := o.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "KESTREL_TEST_ABSENT_KEY")

	t.Setenv("KESTREL_TEST_ABSENT_KEY", "sk-test")
	assert.Empty(t, o.Validate())

	o.APIKey = "sk-literal"
	assert.Empty(t, o.Validate())

	o.Model = ""
	assert.Len(t, o.Validate(), 1)
}

func TestResolveEnvValue(t *testing.T) {
	t.Setenv("KESTREL_TEST_KEY", "resolved")
	assert.Equal(t, "resolved", ResolveEnvValue("${KESTREL_TEST_KEY}"))
	assert.Equal(t, "literal", ResolveEnvValue("literal"))
	assert.Equal(t, "", ResolveEnvValue("${KESTREL_TEST_UNSET}"))
}

func TestServeOptionsValidate(t *testing.T) {
	o := NewServeOptions(6000)
	assert.Empty(t, o.Validate())
	assert.Equal(t, "127.0.0.1:6000", o.Addr())

	o.Transport = "sse"
	assert.Empty(t, o.Validate())

	o.Port = 0
	assert.Len(t, o.Validate(), 1)

	o.Transport = "smoke-signal"
	o.Port = 6000
	assert.Len(t, o.Validate(), 1)
}

func TestAgentOptionsValidate(t *testing.T) {
	o := NewAgentOptions()
	assert.Empty(t, o.Validate())
	assert.Equal(t, 10, o.MaxSteps)

	o.MaxSteps = 0
	assert.Len(t, o.Validate(), 1)
}
