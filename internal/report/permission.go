package report

import (
	"sync"

	"yqhp/reports/common/logger"

	"go.uber.org/zap"
)

// 后台访问报表所需的默认权限
const (
	PermissionLeftAndMain = "CMS_ACCESS_LeftAndMain"
	PermissionReportAdmin = "CMS_ACCESS_ReportAdmin"
)

// Decision 查看决策
type Decision int

const (
	Abstain Decision = iota
	Allow
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "abstain"
	}
}

// Aggregate 合并多个决策：任一拒绝即拒绝，否则任一允许即允许
func Aggregate(ds ...Decision) Decision {
	result := Abstain
	for _, d := range ds {
		switch d {
		case Deny:
			return Deny
		case Allow:
			result = Allow
		}
	}
	return result
}

// Actor 当前操作用户，nil 表示未登录
type Actor struct {
	ID       uint
	Username string
}

// ViewPolicy 报表自定义的查看策略
type ViewPolicy interface {
	ViewDecision(actor *Actor) Decision
}

// ViewHook 外部注入的查看策略，接收最内层的基础报表
type ViewHook func(r Report, actor *Actor) Decision

// CapabilityChecker 权限查询
type CapabilityChecker interface {
	HasAnyPermission(userID uint, codes ...string) (bool, error)
}

// Guard 报表查看权限判断
type Guard struct {
	checker CapabilityChecker
	codes   []string

	mu    sync.RWMutex
	hooks []ViewHook
}

// NewGuard 创建权限判断，未指定权限时使用默认的后台访问权限
func NewGuard(checker CapabilityChecker, codes ...string) *Guard {
	if len(codes) == 0 {
		codes = []string{PermissionLeftAndMain, PermissionReportAdmin}
	}
	return &Guard{checker: checker, codes: codes}
}

// AddHook 注册查看策略
func (g *Guard) AddHook(h ViewHook) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hooks = append(g.hooks, h)
}

// Codes 所需权限
func (g *Guard) Codes() []string {
	return g.codes
}

// CanView 用户是否可以查看报表
func (g *Guard) CanView(r Report, actor *Actor) bool {
	var decisions []Decision
	if p, ok := r.(ViewPolicy); ok {
		decisions = append(decisions, p.ViewDecision(actor))
	}

	g.mu.RLock()
	hooks := g.hooks
	g.mu.RUnlock()
	base := Unwrap(r)
	for _, h := range hooks {
		decisions = append(decisions, h(base, actor))
	}

	switch Aggregate(decisions...) {
	case Deny:
		return false
	case Allow:
		return true
	}

	if actor == nil || g.checker == nil {
		return false
	}
	ok, err := g.checker.HasAnyPermission(actor.ID, g.codes...)
	if err != nil {
		logger.Warn("报表权限查询失败",
			zap.String("report", ID(r)),
			zap.Uint("user_id", actor.ID),
			zap.Error(err),
		)
		return false
	}
	return ok
}
