package scoring

// Keyword tables backing the heuristic component scores. All matching is
// case-insensitive substring matching against lower-cased candidate text.

// blueOceanKeywords suggest an uncontested niche; each hit adds 10 to the
// quality-gap component.
var blueOceanKeywords = []string{
	"new", "innovative", "first", "unique", "breakthrough",
	"novel", "revolutionary", "disruptive", "cutting-edge",
}

// redOceanKeywords suggest a crowded market; each hit subtracts 20.
var redOceanKeywords = []string{
	"another", "yet another", "me too", "clone", "copy",
}

// highCommercialIntent keywords add 8 each to monetization feasibility.
var highCommercialIntent = []string{
	"saas", "tool", "platform", "service", "business",
	"automation", "productivity", "analytics", "management",
	"subscription", "payment", "pricing", "enterprise",
}

// lowCommercialIntent keywords subtract 15 each.
var lowCommercialIntent = []string{
	"free", "open source", "community", "blog", "tutorial",
	"educational", "non-profit", "hobby",
}

// techBuzzKeywords add 10 each to the GitHub-trend component.
var techBuzzKeywords = []string{
	"github", "open source", "repository", "code",
	"api", "sdk", "library", "framework",
}

// toolBuzzKeywords add 10 each to the Product Hunt heat component.
var toolBuzzKeywords = []string{
	"tool", "app", "platform", "service",
	"saas", "product", "software", "extension",
}

// skillRule maps a text keyword to the skills a project mentioning it
// needs. Rules are ordered so the inferred skill list is deterministic.
type skillRule struct {
	keyword string
	skills  []string
}

var skillRules = []skillRule{
	{"react", []string{"React", "Frontend", "JavaScript"}},
	{"vue", []string{"Vue", "Frontend", "JavaScript"}},
	{"angular", []string{"Angular", "Frontend", "JavaScript"}},
	{"node", []string{"Node.js", "Backend", "JavaScript"}},
	{"python", []string{"Python", "Backend"}},
	{"typescript", []string{"TypeScript", "JavaScript"}},
	{"chrome", []string{"JavaScript", "Chrome Extension", "Frontend"}},
	{"extension", []string{"JavaScript", "API"}},
	{"api", []string{"API", "Backend"}},
	{"database", []string{"SQL", "Database", "Backend"}},
	{"ml", []string{"Python", "Machine Learning"}},
	{"ai", []string{"Python", "API", "AI"}},
	{"saas", []string{"Frontend", "Backend", "Database"}},
	{"full-stack", []string{"Frontend", "Backend"}},
}

// baselineSkills are assumed necessary for every project.
var baselineSkills = []string{"JavaScript", "Frontend"}

// techRule maps a text keyword to one required technology for the
// familiarity analysis.
type techRule struct {
	keyword string
	tech    string
}

var techRules = []techRule{
	{"react", "React"},
	{"vue", "Vue"},
	{"angular", "Angular"},
	{"node", "Node.js"},
	{"python", "Python"},
	{"typescript", "TypeScript"},
	{"javascript", "JavaScript"},
	{"chrome", "JavaScript"},
	{"extension", "JavaScript"},
	{"api", "API"},
	{"database", "SQL"},
	{"ml", "Python"},
	{"ai", "Python"},
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
