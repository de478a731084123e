package actionlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_render(t *testing.T) {
	t.Run("no params", func(t *testing.T) {
		c := command{name: cmdDebug, body: "checkpoint reached"}
		assert.Equal(t, "::debug::checkpoint reached", c.render())
	})

	t.Run("one param", func(t *testing.T) {
		c := command{name: cmdSetEnv, params: []string{"name=FOO"}, body: "1"}
		assert.Equal(t, "::set-env name=FOO::1", c.render())
	})

	t.Run("sorted params", func(t *testing.T) {
		c := command{
			name:   cmdError,
			params: []string{"line=12", "file=main.go", "code=E42"},
			body:   "boom",
		}
		assert.Equal(t, "::error code=E42,file=main.go,line=12::boom",
			c.render())
	})

	t.Run("empty body", func(t *testing.T) {
		c := command{name: cmdAddMask}
		assert.Equal(t, "::add-mask::", c.render())
	})

	t.Run("body verbatim", func(t *testing.T) {
		c := command{name: cmdDebug, body: "a::b %25 ,="}
		assert.Equal(t, "::debug::a::b %25 ,=", c.render())
	})
}

func TestResumeMarker(t *testing.T) {
	c := resumeMarker("0b01a7e6-33cc-4bd8-a831-1e5a9d0b0d55")
	assert.Equal(t, "::0b01a7e6-33cc-4bd8-a831-1e5a9d0b0d55::", c.render())
}
