package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllHealthy(t *testing.T) {
	up := HealthCheckerFunc(func(ctx context.Context) bool { return true })
	down := HealthCheckerFunc(func(ctx context.Context) bool { return false })
	ctx := context.Background()

	assert.True(t, AllHealthy{}.Healthy(ctx))
	assert.True(t, AllHealthy{up, NewOkHealthChecker()}.Healthy(ctx))
	assert.False(t, AllHealthy{up, down}.Healthy(ctx))
}
