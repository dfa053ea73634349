package ganzhi

// The ten role-labels (十神) derived from a stem's relationship to the day
// master, in their conventional order.
var TenGods = []string{
	"比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印",
}

// The three fixed partitions. Every Ten-God label belongs to exactly one.
// The upstream rule set spells the middle partition with a typo in one code
// path ("INASPICIOUS"); the declared partition below is the intended set and
// there is no third hidden partition. See DESIGN.md.
var (
	AuspiciousTenGods = map[string]bool{
		"正官": true, "正财": true, "正印": true, "食神": true, "偏财": true,
	}
	InauspiciousTenGods = map[string]bool{
		"七杀": true, "伤官": true, "偏印": true, "劫财": true,
	}
	NeutralTenGods = map[string]bool{
		"比肩": true,
	}
)

// tenGodProduces maps each Ten God to the set it produces, following the
// group-level cycle 比劫→食伤→财→官杀→印→比劫.
var tenGodProduces = map[string][]string{
	"比肩": {"食神", "伤官"},
	"劫财": {"食神", "伤官"},
	"食神": {"偏财", "正财"},
	"伤官": {"偏财", "正财"},
	"偏财": {"七杀", "正官"},
	"正财": {"七杀", "正官"},
	"七杀": {"偏印", "正印"},
	"正官": {"偏印", "正印"},
	"偏印": {"比肩", "劫财"},
	"正印": {"比肩", "劫财"},
}

// tenGodControls maps each Ten God to the set it controls, following the
// group-level cycle 比劫克财, 财克印, 印克食伤, 食伤克官杀, 官杀克比劫.
var tenGodControls = map[string][]string{
	"比肩": {"偏财", "正财"},
	"劫财": {"偏财", "正财"},
	"食神": {"七杀", "正官"},
	"伤官": {"七杀", "正官"},
	"偏财": {"偏印", "正印"},
	"正财": {"偏印", "正印"},
	"七杀": {"比肩", "劫财"},
	"正官": {"比肩", "劫财"},
	"偏印": {"食神", "伤官"},
	"正印": {"食神", "伤官"},
}

// TenGodProduces returns the Ten Gods produced by god, nil for unknown labels.
func TenGodProduces(god string) []string { return tenGodProduces[Norm(god)] }

// TenGodControls returns the Ten Gods controlled by god, nil for unknown labels.
func TenGodControls(god string) []string { return tenGodControls[Norm(god)] }

// SpecialPattern is a named Ten-God configuration. A chart matches when the
// set of Ten Gods present in it is a superset of Required.
type SpecialPattern struct {
	Name             string   `json:"name"`
	Required         []string `json:"required"`
	Description      string   `json:"description"`
	AuspiciousDegree float64  `json:"auspicious_degree"`
}

// SpecialPatterns lists the named patterns in match-report order.
// Multiple patterns may match the same chart; all matches are reported.
var SpecialPatterns = []SpecialPattern{
	{
		Name:             "食神制杀",
		Required:         []string{"食神", "七杀"},
		Description:      "食神制伏七杀，化凶为吉，主才华得用、化解压力",
		AuspiciousDegree: 0.8,
	},
	{
		Name:             "伤官配印",
		Required:         []string{"伤官", "正印"},
		Description:      "伤官得正印约束，才气收放有度，主聪慧而不失稳重",
		AuspiciousDegree: 0.75,
	},
	{
		Name:             "杀印相生",
		Required:         []string{"七杀", "正印"},
		Description:      "七杀生印反助日主，压力转为助力，主掌权得势",
		AuspiciousDegree: 0.8,
	},
	{
		Name:             "财官双美",
		Required:         []string{"正财", "正官"},
		Description:      "正财正官两全，财禄与地位并举",
		AuspiciousDegree: 0.85,
	},
	{
		Name:             "官印相生",
		Required:         []string{"正官", "正印"},
		Description:      "正官生正印护身，主仕途顺遂、名声清正",
		AuspiciousDegree: 0.85,
	},
	{
		Name:             "伤官见官",
		Required:         []string{"伤官", "正官"},
		Description:      "伤官克制正官，易生是非口舌，需谨言慎行",
		AuspiciousDegree: 0.3,
	},
	{
		Name:             "比劫夺财",
		Required:         []string{"劫财", "正财"},
		Description:      "劫财争夺正财，主破耗、合伙纠纷",
		AuspiciousDegree: 0.35,
	},
}

// Matches reports whether the present set covers every required Ten God.
func (p SpecialPattern) Matches(present map[string]bool) bool {
	for _, god := range p.Required {
		if !present[god] {
			return false
		}
	}
	return true
}
