package identity

import "strings"

// WindowAnalyzer slides a reference-length window along the whole heavy chain
// and keeps the best positional identity. It needs no CDR3 boundaries, so it
// tolerates shifted or unusual frameworks.
type WindowAnalyzer struct{}

// BestWindow returns the best window identity of ref within seq and the
// offset where it occurs. ok is false when ref is empty or longer than seq.
// The earliest offset wins ties.
func BestWindow(seq, ref string) (percent float64, offset int, ok bool) {
	seq, ref = strings.ToUpper(seq), strings.ToUpper(ref)
	n := len(ref)
	if n == 0 || len(seq) < n {
		return 0, 0, false
	}
	best, at := -1.0, 0
	for i := 0; i+n <= len(seq); i++ {
		if id := positionalIdentity(seq[i:i+n], ref, n); id > best {
			best, at = id, i
		}
	}
	return best, at, true
}

// Identity returns the highest window identity across every reference.
// References that cannot be placed on the sequence are skipped; when none
// can, the result carries no percentage.
func (WindowAnalyzer) Identity(heavy string, refs []string) Result {
	heavy = strings.ToUpper(heavy)
	var res Result
	for _, ref := range refs {
		pct, off, ok := BestWindow(heavy, ref)
		if !ok {
			continue
		}
		if res.Percent == nil || pct > *res.Percent {
			p := pct
			res = Result{
				Percent:   &p,
				QC:        true,
				Reference: ref,
				Offset:    off,
				Region:    heavy[off : off+len(strings.ToUpper(ref))],
			}
		}
	}
	return res
}
