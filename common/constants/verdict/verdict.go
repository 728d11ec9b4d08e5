package verdict

type Verdict string

// Canonical judging outcomes. Remote status tokens are folded into this list
// by the status classifier.
const (
	AC Verdict = "AC" // Accepted
	WA Verdict = "WA" // Wrong answer
	TL Verdict = "TL" // Time limit exceeded
	ML Verdict = "ML" // Memory limit exceeded
	RT Verdict = "RT" // Runtime error
	CE Verdict = "CE" // Compilation error
	WJ Verdict = "WJ" // Waiting for judge
	JG Verdict = "JG" // Judging
	JF Verdict = "JF" // Judgement failed
	OE Verdict = "OE" // Other error
)

// Terminal reports whether polling for a submission with this verdict may
// stop. Only still-running states keep a submission tracked.
func (v Verdict) Terminal() bool {
	return v != JG && v != WJ
}
