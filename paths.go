package webfolder

import "strings"

// childPath derives a root-relative path from an entry's platform-reported
// full path. rootPath is the traversal root's own full path; the root prefix
// and any leading separators are stripped so the result never starts with a
// slash and never contains the root folder's name.
func childPath(rootPath, fullPath string) string {
	p := fullPath
	if rootPath != "" && rootPath != "/" {
		if rest, ok := strings.CutPrefix(p, rootPath+"/"); ok {
			p = rest
		} else if p == rootPath {
			p = ""
		}
	}
	return strings.TrimLeft(p, "/")
}

// splitFirstSegment splits a relative path into its first segment and the
// remainder. ok is false when the path has no separator, i.e. no remainder.
func splitFirstSegment(p string) (first, rest string, ok bool) {
	p = strings.TrimLeft(p, "/")
	i := strings.IndexByte(p, '/')
	if i < 0 {
		return p, "", false
	}
	return p[:i], p[i+1:], true
}

// baseName returns the final segment of a forward-slash path.
func baseName(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
