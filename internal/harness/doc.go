// Package harness provides scenario-driven conformance testing for the
// analysis engine.
//
// A scenario is a YAML file bundling one chart document with the list of
// analyses to run and their options:
//
//	name: turning-branch-change
//	description: "Branch-only Dayun change against the day pillar"
//	report_token: test-report-turning
//	document:
//	  bazi_data:
//	    bazi_pillars:
//	      day: { stem: 甲, branch: 子 }
//	  dayun_sequence:
//	    - { stem: 甲, branch: 子, start_year: 1990, end_year: 2000 }
//	    - { stem: 甲, branch: 午, start_year: 2000, end_year: 2010 }
//	analyses: [turning_points]
//	options:
//	  liunian_year: 2025
//	  years_ahead: 10
//	  now: 2024
//
// Run executes the requested analyses and collects their reports into one
// Snapshot; RunWithGolden additionally compares the snapshot's JSON against
// a golden file under testdata/golden/{name}.golden (regenerate with
// `go test ./internal/harness -update`).
//
// DETERMINISM:
//
// The analyzers are pure, the snapshot serialization uses fixed struct field
// order plus sorted map keys, and the report token comes from the scenario
// (defaulting to a fixed value) rather than a live UUID generator. Identical
// scenarios therefore produce byte-identical snapshots across runs, which is
// what makes golden comparison possible.
package harness
