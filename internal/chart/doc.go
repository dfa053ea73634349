// Package chart defines the natal-chart data model and the external input
// document contract.
//
// A chart document arrives from an upstream chart-computation service as JSON
// or YAML with the shape:
//
//	bazi_data:
//	  bazi_pillars:
//	    year:  { stem: 甲, branch: 子 }
//	    month: { stem: 丙, branch: 寅 }
//	    day:   { stem: 戊, branch: 辰 }
//	    hour:  { stem: 壬, branch: 戌 }
//	  details:
//	    year:  { main_star: 正官, hidden_stars: [正印, 七杀] }
//	    ...
//	dayun_sequence:
//	  - { stem: 丁, branch: 卯, start_year: 1990, end_year: 2000 }
//	liunian_sequence:
//	  - { year: 2025, stem: 乙, branch: 巳 }
//
// All values here are transient request-scoped data: nothing is mutated after
// Parse returns and nothing is persisted. Stems and branches are NFC-normalized
// on the way in so that later table lookups are deterministic.
//
// VALIDATION:
//
// Document.Validate collects all problems instead of failing fast, in the
// spirit of giving the caller one complete report per document. Validation is
// advisory: the analyzers themselves tolerate incomplete entries by silently
// skipping them, so an invalid document still analyzes; Validate exists for
// the CLI boundary where a human wants to know why a chart looks thin.
package chart
