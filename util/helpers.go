package util

import "strings"

// FriendlyList transforms a list to a human friendly format
// (separated by commas and an ampersand)
func FriendlyList(items []string, apostrophes bool) string {
	if len(items) == 0 {
		return ""
	}
	quoted := items
	if apostrophes {
		quoted = make([]string, len(items))
		for i, item := range items {
			quoted[i] = "'" + item + "'"
		}
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " & " + quoted[len(quoted)-1]
}

// Abbreviate creates unique abbreviations for a list of strings by
// extending the prefix length on collisions
func Abbreviate(items []string, length int, capitalize bool) []string {
	abbreviations := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		l := length
		abbreviation := prefix(item, l, capitalize)
		for seen[abbreviation] && l < len(item) {
			l++
			abbreviation = prefix(item, l, capitalize)
		}
		seen[abbreviation] = true
		abbreviations = append(abbreviations, abbreviation)
	}
	return abbreviations
}

func prefix(s string, length int, capitalize bool) string {
	if length > len(s) {
		length = len(s)
	}
	p := s[:length]
	if capitalize {
		p = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return p
}
