package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-scope/internal/logging"
)

func TestWithLogger(t *testing.T) {
	o := defaultOptions()
	WithLogger(nil)(&o)
	assert.NotNil(t, o.log)

	custom := logging.GetLogger("test")
	WithLogger(custom)(&o)
	assert.Equal(t, custom, o.log)
}
