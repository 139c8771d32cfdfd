package identity

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/abscore/abscore/internal/domain"
	"github.com/fatih/camelcase"
)

// ParseFASTA reads FASTA records. Sequence lines are concatenated, stripped
// of whitespace, and kept in the case they were written in. Lines before
// the first header are ignored.
func ParseFASTA(r io.Reader) ([]domain.SequenceRecord, error) {
	var (
		records []domain.SequenceRecord
		cur     *domain.SequenceRecord
		seq     strings.Builder
	)
	flush := func() {
		if cur != nil {
			cur.Sequence = seq.String()
			records = append(records, *cur)
		}
		seq.Reset()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			cur = &domain.SequenceRecord{Header: strings.TrimSpace(line[1:])}
		case cur != nil:
			seq.WriteString(strings.Join(strings.Fields(line), ""))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	flush()
	return records, nil
}

// Chain roles inferred from FASTA headers.
const (
	RoleHeavy   = "heavy"
	RoleLight   = "light"
	RoleAntigen = "antigen"
)

var roleKeywords = map[string]string{
	"heavy":   RoleHeavy,
	"vh":      RoleHeavy,
	"light":   RoleLight,
	"vl":      RoleLight,
	"vk":      RoleLight,
	"kappa":   RoleLight,
	"lambda":  RoleLight,
	"antigen": RoleAntigen,
	"ag":      RoleAntigen,
	"target":  RoleAntigen,
}

// HeaderTokens splits a FASTA header into lower-case words. Punctuation and
// whitespace separate words, and camel-case runs are split further, so
// "VH_HeavyChain|design1" yields [vh heavy chain design 1].
func HeaderTokens(header string) []string {
	fields := strings.FieldsFunc(header, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, f := range fields {
		for _, part := range camelcase.Split(f) {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

// Role returns the chain role a header names, or "" when it names none.
// Heavy wins over light, light over antigen, when a header names several.
func Role(header string) string {
	found := map[string]bool{}
	for _, tok := range HeaderTokens(header) {
		if role, ok := roleKeywords[tok]; ok {
			found[role] = true
		}
	}
	for _, role := range []string{RoleHeavy, RoleLight, RoleAntigen} {
		if found[role] {
			return role
		}
	}
	return ""
}

// HeavyChain picks the heavy-chain sequence: the first record whose header
// names the heavy chain, else the longest record. The result is upper-cased
// with stop symbols removed. It returns "" when there are no records.
func HeavyChain(records []domain.SequenceRecord) string {
	if len(records) == 0 {
		return ""
	}
	pick := -1
	for i, rec := range records {
		if Role(rec.Header) == RoleHeavy {
			pick = i
			break
		}
	}
	if pick < 0 {
		pick = 0
		for i, rec := range records {
			if len(rec.Sequence) > len(records[pick].Sequence) {
				pick = i
			}
		}
	}
	return cleanSequence(records[pick].Sequence)
}

// ChainLengths returns the antibody length (heavy plus light residues) and
// the antigen length. Records without a recognised role are not counted.
func ChainLengths(records []domain.SequenceRecord) (antibody, antigen int) {
	for _, rec := range records {
		n := len(cleanSequence(rec.Sequence))
		switch Role(rec.Header) {
		case RoleHeavy, RoleLight:
			antibody += n
		case RoleAntigen:
			antigen += n
		}
	}
	return antibody, antigen
}

func cleanSequence(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), "*", "")
}
