package sanitizer

import "strings"

// FeatureSeparator joins feature lists back into the single editable
// string the admin form works with.
const FeatureSeparator = ", "

// ExplodeFeatures splits a comma-delimited feature string into a trimmed
// list with empty entries removed. The admin form edits features as one
// string; storage keeps them as a list.
func ExplodeFeatures(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	features := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

// JoinFeatures is the inverse of ExplodeFeatures. For any list of
// non-empty trimmed strings, ExplodeFeatures(JoinFeatures(list))
// reproduces the list.
func JoinFeatures(features []string) string {
	return strings.Join(features, FeatureSeparator)
}
