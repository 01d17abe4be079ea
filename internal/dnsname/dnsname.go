// Package dnsname provides helpers for absolute DNS names. The engine
// works exclusively with dot-terminated names; these helpers normalize
// caller input and implement the suffix arithmetic used by zone discovery.
package dnsname

import "strings"

// Normalize appends the trailing label separator when missing.
func Normalize(name string) string {
	if name == "" || !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}

// Trim removes the trailing label separator when present. Some control
// planes (Azure DNS) store zone and record names without it.
func Trim(name string) string {
	return strings.TrimSuffix(name, ".")
}

// ParentSuffix drops the leftmost label of an absolute name, returning
// the empty string once no labels remain ("a.b.com." -> "b.com." ->
// "com." -> "").
func ParentSuffix(name string) string {
	i := strings.Index(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// Equal reports whether two names refer to the same node. DNS names are
// ASCII case-insensitive; control planes differ in the case they return.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}
