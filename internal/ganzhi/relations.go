package ganzhi

// stemHe maps each stem to its five-combination (五合) partner.
// Stored one-directional; lookups go through symmetric pair helpers.
var stemHe = map[string]string{
	"甲": "己",
	"乙": "庚",
	"丙": "辛",
	"丁": "壬",
	"戊": "癸",
}

// branchLiuHe maps each branch to its six-combination (六合) partner.
var branchLiuHe = map[string]string{
	"子": "丑",
	"寅": "亥",
	"卯": "戌",
	"辰": "酉",
	"巳": "申",
	"午": "未",
}

// branchChong maps each branch to its six-clash (六冲) opposite.
var branchChong = map[string]string{
	"子": "午",
	"丑": "未",
	"寅": "申",
	"卯": "酉",
	"辰": "戌",
	"巳": "亥",
}

// branchXing maps each branch to its punishment (刑) counterpart.
// The three-punishment cycles (寅巳申, 丑戌未) are flattened to the pair each
// branch punishes next in the cycle; 辰午酉亥 punish themselves.
var branchXing = map[string]string{
	"子": "卯", "卯": "子",
	"寅": "巳", "巳": "申", "申": "寅",
	"丑": "戌", "戌": "未", "未": "丑",
	"辰": "辰", "午": "午", "酉": "酉", "亥": "亥",
}

// branchHai maps each branch to its six-harm (六害) counterpart.
var branchHai = map[string]string{
	"子": "未",
	"丑": "午",
	"寅": "巳",
	"卯": "辰",
	"申": "亥",
	"酉": "戌",
}

// Group is a fixed three-branch combination with its resulting element.
type Group struct {
	Name     string
	Branches [3]string
	Element  Element
}

// SanHeGroups lists the three-harmony (三合) groups.
var SanHeGroups = []Group{
	{Name: "申子辰", Branches: [3]string{"申", "子", "辰"}, Element: Water},
	{Name: "寅午戌", Branches: [3]string{"寅", "午", "戌"}, Element: Fire},
	{Name: "巳酉丑", Branches: [3]string{"巳", "酉", "丑"}, Element: Metal},
	{Name: "亥卯未", Branches: [3]string{"亥", "卯", "未"}, Element: Wood},
}

// SanHuiGroups lists the three-meeting (三会) directional groups.
var SanHuiGroups = []Group{
	{Name: "寅卯辰", Branches: [3]string{"寅", "卯", "辰"}, Element: Wood},
	{Name: "巳午未", Branches: [3]string{"巳", "午", "未"}, Element: Fire},
	{Name: "申酉戌", Branches: [3]string{"申", "酉", "戌"}, Element: Metal},
	{Name: "亥子丑", Branches: [3]string{"亥", "子", "丑"}, Element: Water},
}

// Contains reports whether the group includes the given branch.
func (g Group) Contains(branch string) bool {
	b := Norm(branch)
	return g.Branches[0] == b || g.Branches[1] == b || g.Branches[2] == b
}

// symmetric checks a one-directional pair table in both directions.
// Empty inputs never match.
func symmetric(table map[string]string, a, b string) bool {
	a, b = Norm(a), Norm(b)
	if a == "" || b == "" {
		return false
	}
	return table[a] == b || table[b] == a
}

// StemsCombine reports whether two stems form a He (五合) pair.
func StemsCombine(a, b string) bool { return symmetric(stemHe, a, b) }

// BranchesCombine reports whether two branches form a LiuHe (六合) pair.
func BranchesCombine(a, b string) bool { return symmetric(branchLiuHe, a, b) }

// BranchesClash reports whether two branches form a Chong (六冲) pair.
func BranchesClash(a, b string) bool { return symmetric(branchChong, a, b) }

// BranchesPunish reports whether two branches form a Xing (刑) pair.
// Self-punishing branches match themselves.
func BranchesPunish(a, b string) bool { return symmetric(branchXing, a, b) }

// BranchesHarm reports whether two branches form a Hai (六害) pair.
func BranchesHarm(a, b string) bool { return symmetric(branchHai, a, b) }

// SharedGroups returns every group from the given set that contains both
// branches. All matches are returned, not just the first; a branch pair may
// belong to several groups only across different group sets, but callers
// treat the result uniformly.
func SharedGroups(groups []Group, a, b string) []Group {
	var out []Group
	for _, g := range groups {
		if g.Contains(a) && g.Contains(b) {
			out = append(out, g)
		}
	}
	return out
}
