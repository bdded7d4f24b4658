package listing

// Badge is the presentational hint attached to a status or type value.
// Tone is a colour family understood by the UI ("green", "red", ...),
// Icon a symbolic icon name.
type Badge struct {
	Tone string `json:"tone"`
	Icon string `json:"icon,omitempty"`
}

// BadgeTable maps closed-set values to badges. Unknown keys resolve to
// the fallback entry.
type BadgeTable struct {
	entries  map[string]Badge
	fallback Badge
}

// NewBadgeTable builds a table. The map is copied.
func NewBadgeTable(fallback Badge, entries map[string]Badge) BadgeTable {
	m := make(map[string]Badge, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return BadgeTable{entries: m, fallback: fallback}
}

// Lookup returns the badge for key or the fallback.
func (t BadgeTable) Lookup(key string) Badge {
	if b, ok := t.entries[key]; ok {
		return b
	}
	return t.fallback
}

// DefaultBadge is the neutral badge used as fallback by most tables.
var DefaultBadge = Badge{Tone: "gray", Icon: "circle"}
