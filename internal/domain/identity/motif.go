package identity

import (
	"regexp"
	"strings"
)

// MotifAnalyzer locates the CDR-H3 loop by its conserved flanks and compares
// it position by position against the primary reference.
type MotifAnalyzer struct{}

// cdr3Pattern matches Cys ... Trp followed by the Gly-X-Gly framework 4 anchor.
var cdr3Pattern = regexp.MustCompile(`(C[A-Z]{5,25}W)G[A-Z]G`)

// minCDR3Span is the shortest Cys..Trp region the fallback accepts.
const minCDR3Span = 5

// ExtractCDR3 returns the CDR-H3 region (Cys through Trp inclusive) and its
// offset. The motif match is tried first; failing that, the last Trp is
// paired with the nearest preceding Cys, and the region is unresolved when
// that span is shorter than minCDR3Span.
func ExtractCDR3(seq string) (region string, offset int, ok bool) {
	seq = strings.ToUpper(seq)
	if m := cdr3Pattern.FindStringSubmatchIndex(seq); m != nil {
		return seq[m[2]:m[3]], m[2], true
	}

	w := strings.LastIndexByte(seq, 'W')
	if w < 0 {
		return "", 0, false
	}
	c := strings.LastIndexByte(seq[:w], 'C')
	if c < 0 || w-c+1 < minCDR3Span {
		return "", 0, false
	}
	return seq[c : w+1], c, true
}

// Identity compares the extracted CDR3 against the first reference of the
// panel over the shorter of the two lengths. An unresolvable CDR3 yields
// identity 0 with QC false.
func (MotifAnalyzer) Identity(heavy string, refs []string) Result {
	if len(refs) == 0 {
		return Result{}
	}
	primary := strings.ToUpper(refs[0])
	region, off, ok := ExtractCDR3(heavy)
	if !ok {
		zero := 0.0
		return Result{Percent: &zero, Reference: refs[0]}
	}
	pct := positionalIdentity(region, primary, min(len(region), len(primary)))
	return Result{
		Percent:   &pct,
		QC:        true,
		Reference: refs[0],
		Offset:    off,
		Region:    region,
	}
}
