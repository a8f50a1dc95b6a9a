//go:build windows

package userres

// On Windows, uid/gid have no meaning for the stdlib os.FileInfo this tool
// reads; always report "unresolved", matching spec.md §6's "On non-Unix,
// always returns None".
func newPlatformResolver() Resolver {
	return newCachingResolver(func(id int, group bool) (string, bool) { return "", false })
}
