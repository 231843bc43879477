// Package instruction turns a pattern.Pattern into row-by-row knitting
// instructions.
//
// Rows are read right to left: RenderRow walks pattern.Row.Backward and emits
// one token per stitch, each followed by ", ". Plain runs render as "k{n}",
// the shaping stitches as their mnemonic ("kyok", "sk2p"), and gaps render as
// nothing because they only align the chart.
//
// # Compaction
//
// Compact merges consecutive identical border rows into range lines:
//
//	Instructions:
//	Rows 1-2: k8,
//	Row 3: k2, sk2p, k2, kyok,
//	Row 4: k1, sk2p, k2, kyok, k1,
//	Rows 5-6: k8,
//	Row 7: k1, kyok, k2, sk2p, k1,
//	Row 8: k2, kyok, k2, sk2p,
//	Repeat from Row 1
//
// Lines is the non-compacting formatter: one line per row, no heading and no
// trailer. Expand reverses compaction, so Expand(Compact(p)) equals Lines(p)
// for every generated pattern.
package instruction
