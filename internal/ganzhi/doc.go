// Package ganzhi holds the static symbolic algebra of the sexagenary cycle.
//
// Everything in this package is immutable constant data initialized at load
// time: the ten heavenly stems, the twelve earthly branches, their five-element
// assignments, the pairwise relation tables (He, LiuHe, Chong, Xing, Hai), the
// three-branch harmony/meeting groups (SanHe, SanHui), the five-element
// production/control cycle, and the Ten-God label sets with their
// production/control graph and named special patterns.
//
// DETERMINISM:
//
// Lookups are pure functions over these tables. Pair tables are symmetric by
// construction: StemsCombine(a, b) consults table[a]==b || table[b]==a, so
// classification is order-independent. There is no mutable state and no
// reload semantics; the tables never change at runtime, which makes every
// consumer of this package safe for concurrent use without locking.
//
// INPUT NORMALIZATION:
//
// Stems and branches arrive as UTF-8 strings from external chart documents.
// Norm() applies Unicode NFC normalization and trims surrounding whitespace
// before any table lookup, so visually identical symbols in different
// normalization forms classify identically.
package ganzhi
