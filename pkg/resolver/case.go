package resolver

import "strings"

// ToLowerCamel converts a lower_underscore identifier to lowerCamel.
// The first segment keeps its lowercase form; every later segment is
// capitalized and concatenated. An empty string maps to an empty string.
func ToLowerCamel(name string) string {
	segments := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(seg))
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// underscoresToCapitalizedCamel converts a lower_underscore name to
// UpperCamel, the convention for derived Java outer class names.
func underscoresToCapitalizedCamel(name string) string {
	camel := ToLowerCamel(name)
	if camel == "" {
		return ""
	}
	return strings.ToUpper(camel[:1]) + camel[1:]
}
