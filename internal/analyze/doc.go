// Package analyze derives structured insight from a fixed natal chart and its
// moving decade (Dayun) and year (Liunian) sequences.
//
// Four independent entry points, none of which calls another:
//
//   - TurningPoints scores the transition between every adjacent Dayun pair
//     against the day pillar and buckets the magnitude.
//   - Interaction reports every classified relation between one Liunian and
//     the four natal pillars, with a per-pillar and an aggregate impact.
//   - KeyTimes scans a bounded future window of Dayun/Liunian entries and
//     buckets each year into named event categories with recommendations.
//   - TenGods builds the production/control graph over the Ten-God labels
//     present in the chart, scores auspiciousness and distribution balance,
//     and detects named special patterns.
//
// DETERMINISM:
//
// Every function here is synchronous, stateless and pure: same input, byte
// identical output. The only shared data are the immutable ganzhi tables, so
// concurrent calls need no locking. There is no I/O and no suspension point;
// timeout policy belongs to the caller.
//
// ERROR MODEL:
//
// Malformed-but-present data never raises. Entries with an empty stem or
// branch are silently skipped; collections below the minimum size yield empty
// results; only Interaction reports a soft error envelope (its single
// required Liunian being incomplete leaves nothing to analyze at all).
package analyze
