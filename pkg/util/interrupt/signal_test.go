package interrupt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminationContextCancel(t *testing.T) {
	ctx, cancel := TerminationContext(context.Background())
	assert.NoError(t, ctx.Err())
	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
