package instruction

import (
	"strconv"
	"strings"

	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/pattern"
)

// Token spellings used in instruction text.
const (
	PlainPrefix = "k"
	KYOKToken   = "kyok"
	SK2PToken   = "sk2p"
	Separator   = ", "
)

// Token returns the instruction token for a stitch. Gaps have no token and
// return "".
func Token(s pattern.Stitch) string {
	switch s.Kind() {
	case format.StitchPlain:
		return PlainPrefix + strconv.Itoa(s.Count())
	case format.StitchKYOK:
		return KYOKToken
	case format.StitchSK2P:
		return SK2PToken
	case format.StitchGap:
		return ""
	default:
		return ""
	}
}

// Tokens returns the row's tokens in reading order (right to left), gaps
// skipped.
func Tokens(row pattern.Row) []string {
	out := make([]string, 0, row.Len())
	for s := range row.Backward() {
		if tok := Token(s); tok != "" {
			out = append(out, tok)
		}
	}

	return out
}

// ForwardTokens returns the row's tokens in chart order (left to right), gaps
// skipped. It is the reverse of Tokens.
func ForwardTokens(row pattern.Row) []string {
	out := make([]string, 0, row.Len())
	for s := range row.Forward() {
		if tok := Token(s); tok != "" {
			out = append(out, tok)
		}
	}

	return out
}

// RenderRow renders a row as instruction text, right to left, each token
// followed by ", ".
//
// Example:
//
//	row: [Gap(2) KYOK Plain(2) SK2P Plain(2)]
//	text: "k2, sk2p, k2, kyok, "
func RenderRow(row pattern.Row) string {
	var sb strings.Builder
	for s := range row.Backward() {
		tok := Token(s)
		if tok == "" {
			continue
		}
		sb.WriteString(tok)
		sb.WriteString(Separator)
	}

	return sb.String()
}
