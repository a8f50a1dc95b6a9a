//go:build !windows

package userres

import (
	"os/user"
	"strconv"
)

func newPlatformResolver() Resolver {
	return newCachingResolver(lookupUnix)
}

func lookupUnix(id int, group bool) (string, bool) {
	idStr := strconv.Itoa(id)
	if group {
		g, err := user.LookupGroupId(idStr)
		if err != nil {
			return "", false
		}
		return g.Name, true
	}
	u, err := user.LookupId(idStr)
	if err != nil {
		return "", false
	}
	return u.Username, true
}
