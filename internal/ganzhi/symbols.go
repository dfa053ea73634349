package ganzhi

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Element is one of the five phases (Wuxing).
type Element string

const (
	Wood  Element = "木"
	Fire  Element = "火"
	Earth Element = "土"
	Metal Element = "金"
	Water Element = "水"
)

// Stems lists the ten heavenly stems in cycle order.
var Stems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches lists the twelve earthly branches in cycle order.
var Branches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// stemElements maps each heavenly stem to its five-element assignment.
var stemElements = map[string]Element{
	"甲": Wood, "乙": Wood,
	"丙": Fire, "丁": Fire,
	"戊": Earth, "己": Earth,
	"庚": Metal, "辛": Metal,
	"壬": Water, "癸": Water,
}

// branchElements maps each earthly branch to its five-element assignment.
var branchElements = map[string]Element{
	"子": Water, "丑": Earth, "寅": Wood, "卯": Wood,
	"辰": Earth, "巳": Fire, "午": Fire, "未": Earth,
	"申": Metal, "酉": Metal, "戌": Earth, "亥": Water,
}

// Norm canonicalizes an externally supplied stem or branch symbol.
// Applies NFC normalization and strips surrounding whitespace. Returns ""
// for input that is empty after trimming; unknown symbols pass through
// unchanged (table lookups on them simply miss).
func Norm(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// StemElement returns the five-element assignment of a stem.
// The second return is false for unknown or empty symbols.
func StemElement(stem string) (Element, bool) {
	e, ok := stemElements[Norm(stem)]
	return e, ok
}

// BranchElement returns the five-element assignment of a branch.
// The second return is false for unknown or empty symbols.
func BranchElement(branch string) (Element, bool) {
	e, ok := branchElements[Norm(branch)]
	return e, ok
}

// IsStem reports whether s is one of the ten heavenly stems.
func IsStem(s string) bool {
	_, ok := stemElements[Norm(s)]
	return ok
}

// IsBranch reports whether s is one of the twelve earthly branches.
func IsBranch(s string) bool {
	_, ok := branchElements[Norm(s)]
	return ok
}
