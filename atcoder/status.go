package atcoder

import (
	"strings"

	"atcoder_judger/common/constants/verdict"
)

// ParseStatus maps a raw status cell of the remote site to a verdict. The
// function is total: any unrecognized token becomes verdict.OE.
//
// While test cases are still running the site renders progress like "3/10",
// so anything containing a "/" is still judging. The page reader also uses
// "/" as the placeholder for missing cells, which lands in the same case.
func ParseStatus(status string) verdict.Verdict {
	if strings.Contains(status, "/") {
		return verdict.JG
	}
	switch status {
	case "AC":
		return verdict.AC
	case "WA", "QLE", "OLE", "IE":
		return verdict.WA
	case "TLE":
		return verdict.TL
	case "MLE":
		return verdict.ML
	case "RE":
		return verdict.RT
	case "CE":
		return verdict.CE
	case "WJ", "WR":
		return verdict.WJ
	case "Judging":
		return verdict.JG
	}
	return verdict.OE
}

// ScoreFor derives the score from the verdict. The scraped submission view
// exposes no subtask scores, so scoring is all or nothing.
func ScoreFor(v verdict.Verdict) int {
	if v == verdict.AC {
		return 100
	}
	return 0
}
