package similarity

import "strings"

// englishStopWords is a standard English stop word list.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "out", "over", "own", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "then",
	"there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "your", "yours", "yourself",
}

// jobFillerStopWords are terms so common in job postings that they carry no
// matching signal.
var jobFillerStopWords = []string{
	"experience", "years", "required", "preferred", "candidate", "position",
	"role", "team", "company", "opportunity", "benefits", "salary",
	"competitive", "applicant", "applicants", "apply", "job", "join",
	"looking", "seeking", "skills", "work", "working", "responsibilities",
	"qualifications", "ability", "strong", "must", "plus", "including",
	"environment", "description",
}

// stopWords is the combined stop word set used when fitting the vector
// space.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	set := make(map[string]bool, len(englishStopWords)+len(jobFillerStopWords))
	for _, w := range englishStopWords {
		set[strings.ToLower(w)] = true
	}
	for _, w := range jobFillerStopWords {
		set[strings.ToLower(w)] = true
	}
	return set
}
