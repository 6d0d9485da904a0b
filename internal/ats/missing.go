package ats

import (
	"fmt"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/normalize"
	"github.com/jonathan/job-match-engine/internal/types"
)

// keywordAdvice provides specific remediation advice for well-known
// keywords; everything else falls back to a tier-generic template.
var keywordAdvice = map[string]string{
	"windows":                 "List the specific Windows versions you have supported (e.g. Windows 10/11)",
	"active directory":        "Mention Active Directory user and group management tasks you have performed",
	"office 365":              "Call out Office 365 administration or migration work, even from lab environments",
	"itil":                    "Reference ITIL-aligned processes you have followed; a foundation certification helps",
	"servicenow":              "Name the ticketing platforms you have used; ServiceNow experience transfers well",
	"help desk":               "Describe your help desk or service desk experience with ticket volumes",
	"troubleshooting":         "Give concrete examples of problems you diagnosed and resolved",
	"azure":                   "Include any Azure portal, Entra ID, or cloud administration exposure",
	"intune":                  "Mention mobile device or endpoint management work, Intune or otherwise",
	"virtual private network": "Note experience supporting VPN clients and remote connectivity issues",
}

// Missing returns every keyword present in the job text but absent from the
// resume text, sorted by importance weight descending. Both texts must
// already be normalized.
func Missing(jobText, resumeText string, table *config.KeywordTable) []types.MissingKeyword {
	jobWords := normalize.WordSet(jobText)
	resumeWords := normalize.WordSet(resumeText)

	missing := []types.MissingKeyword{}
	for _, kw := range table.AllKeywords() {
		if !normalize.ContainsAllWords(jobWords, kw.Keyword) {
			continue
		}
		if normalize.ContainsAllWords(resumeWords, kw.Keyword) {
			continue
		}
		missing = append(missing, types.MissingKeyword{
			Keyword:        kw.Keyword,
			Importance:     kw.Weight,
			Tier:           kw.Tier,
			Recommendation: adviceFor(kw.Keyword, kw.Tier),
		})
	}
	return missing
}

func adviceFor(keyword string, tier types.KeywordTier) string {
	if advice, ok := keywordAdvice[keyword]; ok {
		return advice
	}
	if tier == types.TierCritical {
		return fmt.Sprintf("Consider gaining experience with %s; the posting treats it as a core requirement", keyword)
	}
	return fmt.Sprintf("If you have experience with %s, include it prominently in your resume", keyword)
}
