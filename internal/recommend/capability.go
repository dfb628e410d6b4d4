package recommend

import (
	"strings"
	"unicode"
)

type CapabilityKind int

const (
	// CapabilityUnavailable: empty field or the literal "NA".
	CapabilityUnavailable CapabilityKind = iota
	// CapabilityMultiColor: the literal "Multi", unlimited colors.
	CapabilityMultiColor
	// CapabilityLimited: leading numeric color limit, optional "(...)" note.
	CapabilityLimited
	// CapabilityDescriptive: free text with no digits, e.g. "Engraved finish".
	CapabilityDescriptive
)

// Capability is the parsed form of one raw method field. The raw strings are
// legacy spreadsheet values encoding three shapes in one column; they are
// parsed here exactly once instead of re-interpreted at every call site.
type Capability struct {
	Kind       CapabilityKind
	ColorLimit string
	Note       string
}

func (c Capability) Available() bool {
	return c.Kind != CapabilityUnavailable
}

// ParseCapability derives availability, color limit and note from one raw
// method field value.
func ParseCapability(raw string) Capability {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "NA") {
		return Capability{Kind: CapabilityUnavailable}
	}
	if strings.EqualFold(v, "Multi") {
		return Capability{Kind: CapabilityMultiColor, ColorLimit: "Multi-color"}
	}
	if strings.ContainsFunc(v, unicode.IsDigit) {
		head, tail, found := strings.Cut(v, "(")
		c := Capability{
			Kind:       CapabilityLimited,
			ColorLimit: strings.TrimSpace(head) + " color(s)",
		}
		if found {
			c.Note = "(" + tail
		}
		return c
	}
	return Capability{Kind: CapabilityDescriptive, Note: v}
}
