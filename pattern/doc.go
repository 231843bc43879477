// Package pattern models a spike-textured knitting chart and generates it from
// two integers.
//
// A Pattern is an ordered list of Rows; a Row is an ordered list of Stitches.
// Rows are stored left to right, the order a chart is drawn in. Knitters read
// each row right to left, so text renderers walk Row.Backward while chart
// renderers walk Row.Forward.
//
// # Shape
//
// For spike height h and spike distance d, Generate produces 4+2h rows:
//
//	rows 1..2          top border     Gap(h), Plain(W)
//	rows 3..2+h        ascending      spike rows, KYOK before SK2P
//	rows 3+h..4+h      middle border  Plain(W)
//	rows 5+h..4+2h     descending     spike rows, SK2P before KYOK
//
// where W = 2d+2h+2 is the knitted width of every row. Gaps are chart
// offsets only and never count towards W.
//
// # Basic Usage
//
//	p, err := pattern.Generate(2, 1)
//	if err != nil {
//	    return err
//	}
//	for i, row := range p.All() {
//	    fmt.Println(pattern.RowNumber(i), row)
//	}
//
// Every value in this package is immutable after construction and safe to
// share between goroutines.
package pattern
