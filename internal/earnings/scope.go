package earnings

// ScopeKind selects whose records an aggregation may read.
type ScopeKind string

const (
	ScopeSelf ScopeKind = "self"
	ScopeAll  ScopeKind = "all"
	ScopeUser ScopeKind = "user"
)

// Scope is the resolved record-visibility of an aggregation query.
// UserID is set for ScopeSelf and ScopeUser, empty for ScopeAll.
type Scope struct {
	Kind   ScopeKind
	UserID string
}

// ResolveScope applies the role rule to a requested scope: barbers are
// always forced to their own records regardless of what was asked for,
// while owners get what they requested (defaulting to all). The returned
// scope carries the concrete user id to filter on, or none for all.
func ResolveScope(role Role, callerID string, kind ScopeKind, targetUserID string) Scope {
	if role != RoleOwner {
		return Scope{Kind: ScopeSelf, UserID: callerID}
	}
	switch kind {
	case ScopeSelf:
		return Scope{Kind: ScopeSelf, UserID: callerID}
	case ScopeUser:
		return Scope{Kind: ScopeUser, UserID: targetUserID}
	default:
		return Scope{Kind: ScopeAll}
	}
}
