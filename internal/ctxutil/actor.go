package ctxutil

import (
	"context"

	"yqhp/reports/internal/report"
)

type ctxKey string

const actorKey ctxKey = "actor"

// WithActor 将当前用户存入context
func WithActor(ctx context.Context, actor *report.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor 从context获取当前用户，未登录返回 nil
func GetActor(ctx context.Context) *report.Actor {
	if v, ok := ctx.Value(actorKey).(*report.Actor); ok {
		return v
	}
	return nil
}

// GetUserID 当前用户ID，未登录为 0
func GetUserID(ctx context.Context) uint {
	if a := GetActor(ctx); a != nil {
		return a.ID
	}
	return 0
}
