// Package relation classifies the relationship between two stem/branch pairs.
//
// One table-driven engine, two call-site contracts:
//
// DayRelation is the coarse single-label variant used by turning-point
// analysis. It checks stem-He, branch-LiuHe, stem-equality, branch-Chong,
// branch-equality in that fixed precedence and returns the FIRST match among
// 合/冲/同/无.
//
// PillarInteractions is the fine multi-relation variant used by interaction
// analysis. Stem and branch are classified independently, each yielding at
// most one relation, and every SanHe/SanHui group containing both branches
// yields one additional special relation. Each relation carries its own
// impact sign.
//
// Both entry points are pure functions of their inputs plus the immutable
// ganzhi tables: deterministic, stateless, safe for concurrent use. Neither
// fails; when nothing matches or an input half is empty the coarse variant
// reports 无 and the fine variant simply emits fewer relations.
package relation
