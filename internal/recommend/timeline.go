package recommend

import "strings"

// MatchProductionTime selects the production time line describing a method.
// The blob holds one free text line per method; the first line containing any
// of the method's keywords as a case insensitive substring wins, returned
// trimmed. Returns "" when the blob is empty or no line matches.
func MatchProductionTime(blob string, method Method) string {
	if blob == "" {
		return ""
	}
	for _, line := range strings.Split(blob, "\n") {
		for _, kw := range method.Keywords {
			if containsFold(line, kw) {
				return strings.TrimSpace(line)
			}
		}
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
