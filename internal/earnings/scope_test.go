package earnings

import (
	"testing"
)

func TestResolveScope(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		caller   string
		kind     ScopeKind
		targetID string
		want     Scope
	}{
		{
			name: "barber requesting all is forced to self",
			role: RoleBarber, caller: "b1", kind: ScopeAll,
			want: Scope{Kind: ScopeSelf, UserID: "b1"},
		},
		{
			name: "barber requesting another user is forced to self",
			role: RoleBarber, caller: "b1", kind: ScopeUser, targetID: "b2",
			want: Scope{Kind: ScopeSelf, UserID: "b1"},
		},
		{
			name: "barber default is self",
			role: RoleBarber, caller: "b1",
			want: Scope{Kind: ScopeSelf, UserID: "b1"},
		},
		{
			name: "owner default is all",
			role: RoleOwner, caller: "o1",
			want: Scope{Kind: ScopeAll},
		},
		{
			name: "owner may request all",
			role: RoleOwner, caller: "o1", kind: ScopeAll,
			want: Scope{Kind: ScopeAll},
		},
		{
			name: "owner may request self",
			role: RoleOwner, caller: "o1", kind: ScopeSelf,
			want: Scope{Kind: ScopeSelf, UserID: "o1"},
		},
		{
			name: "owner may request a specific user",
			role: RoleOwner, caller: "o1", kind: ScopeUser, targetID: "b2",
			want: Scope{Kind: ScopeUser, UserID: "b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveScope(tt.role, tt.caller, tt.kind, tt.targetID)
			if got != tt.want {
				t.Errorf("ResolveScope = %+v, want %+v", got, tt.want)
			}
		})
	}
}
