package fsm

import (
	"testing"

	"github.com/enetx/g"
	"github.com/stretchr/testify/assert"
)

// The package declares its own Builder while g exports a string Builder, so
// g must stay imported qualified in every file; both types remain usable
// side by side.
func TestBuilderDistinctFromStringBuilder(t *testing.T) {
	t.Parallel()

	b := New[string, string, int]()
	assert.IsType(t, &Builder[string, string, int]{}, b)

	sb := g.NewBuilder()
	sb.WriteString("fsm")
	assert.Equal(t, g.String("fsm"), sb.String())
}
