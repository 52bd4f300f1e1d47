// Package eligibility decides whether an income certificate can be
// issued for a person, from their per-year payment-statement submission
// flags. It is a small decision table, independent of the
// recommendation core, bundled for the same back-office users.
package eligibility

import "strings"

// Verdict is the outcome of an eligibility check.
type Verdict int

const (
	// VerdictIssuable: certificate can be issued as-is.
	VerdictIssuable Verdict = iota
	// VerdictIssuableAfterStatementCheck: issuable, but the payment
	// statement must be checked first (exactly one special-category
	// submission and nothing else).
	VerdictIssuableAfterStatementCheck
	// VerdictOtherCertificateRequired: at least one submission exists, so
	// a different certificate type applies.
	VerdictOtherCertificateRequired
	// VerdictReportRequired: the person is report-liable and has no
	// submission on file.
	VerdictReportRequired
)

// String returns the operator-facing label for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictReportRequired:
		return "신고 필요"
	case VerdictOtherCertificateRequired:
		return "타 증명 발급 필요"
	case VerdictIssuableAfterStatementCheck:
		return "발급가능(지급명세서 조회 필요)"
	default:
		return "발급가능"
	}
}

// Input holds the flags the decision is made over.
type Input struct {
	// Reportable marks the person as income-report liable for the
	// selected years.
	Reportable bool
	// Submissions maps each selected year to whether a payment statement
	// was submitted.
	Submissions map[int]bool
	// SpecialYCount counts submitted marks among the special categories
	// (기타소득, 기타소득(간이), 연금계좌) in the selected years.
	SpecialYCount int
}

// Decide applies the decision table. Pure function:
//  1. report-liable with no submission → report required
//  2. any submission → other certificate required
//  3. no submission but exactly one special-category mark → issuable
//     after statement check
//  4. otherwise → issuable
func Decide(in Input) Verdict {
	anySubmitted := false
	for _, ok := range in.Submissions {
		if ok {
			anySubmitted = true
			break
		}
	}
	switch {
	case in.Reportable && !anySubmitted:
		return VerdictReportRequired
	case anySubmitted:
		return VerdictOtherCertificateRequired
	case in.SpecialYCount == 1:
		return VerdictIssuableAfterStatementCheck
	default:
		return VerdictIssuable
	}
}

// truthyMarks are the spellings accepted as a submitted flag in source
// spreadsheets.
var truthyMarks = map[string]bool{
	"1": true, "Y": true, "TRUE": true, "T": true,
	"예": true, "O": true, "YES": true, "제출": true,
}

// Truthy reports whether a cell value counts as a submitted mark.
func Truthy(v string) bool {
	return truthyMarks[strings.ToUpper(strings.TrimSpace(v))]
}
