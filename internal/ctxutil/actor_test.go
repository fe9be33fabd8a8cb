package ctxutil

import (
	"context"
	"testing"

	"yqhp/reports/internal/report"

	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetActor(ctx))
	assert.Zero(t, GetUserID(ctx))

	ctx = WithActor(ctx, &report.Actor{ID: 7, Username: "admin"})
	assert.Equal(t, "admin", GetActor(ctx).Username)
	assert.Equal(t, uint(7), GetUserID(ctx))
}
