package userres

import "testing"

func TestCachingResolverCachesLookup(t *testing.T) {
	calls := 0
	r := newCachingResolver(func(id int, group bool) (string, bool) {
		calls++
		return "alice", true
	})

	name, ok := r.User(501)
	if !ok || name != "alice" {
		t.Fatalf("got (%q, %v), want (alice, true)", name, ok)
	}
	if _, _ = r.User(501); calls != 1 {
		t.Errorf("lookup called %d times, want 1 (cache hit expected)", calls)
	}
}

func TestCachingResolverGroupsAreSeparateFromUsers(t *testing.T) {
	r := newCachingResolver(func(id int, group bool) (string, bool) {
		if group {
			return "staff", true
		}
		return "bob", true
	})

	user, _ := r.User(1)
	grp, _ := r.Group(1)
	if user != "bob" || grp != "staff" {
		t.Errorf("got user=%q group=%q, want bob/staff", user, grp)
	}
}

func TestCachingResolverMissReportsNotOK(t *testing.T) {
	r := newCachingResolver(func(id int, group bool) (string, bool) {
		return "", false
	})
	if _, ok := r.User(999); ok {
		t.Error("expected not-ok for an unresolvable uid")
	}
}
