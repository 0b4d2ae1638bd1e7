package nested

import "strings"

// PathSeparator separates keys in the string form of a Path.
const PathSeparator = "."

// Path is an ordered sequence of keys describing a route through a Map.
type Path []string

// ParsePath splits s on PathSeparator. An empty string yields an empty path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, PathSeparator))
}

// String joins the keys with PathSeparator.
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}
