// Package similarity scores resume-to-job textual fit with TF-IDF cosine
// similarity over a vector space fit jointly across the resume and every job
// in the current call.
package similarity

import "strings"

// Scores returns one cosine similarity in [0, 1] per job blob, in input
// order. The vector space is fit over [resume] + jobs in a single pass so
// vocabulary and IDF weights are consistent across documents.
//
// An empty job list returns an empty result without fitting. An empty or
// whitespace-only resume is a ValidationError.
func Scores(resumeText string, jobTexts []string) ([]float64, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ValidationError{Message: "empty resume", Field: "resume"}
	}
	if len(jobTexts) == 0 {
		return []float64{}, nil
	}

	corpus := make([]string, 0, len(jobTexts)+1)
	corpus = append(corpus, resumeText)
	corpus = append(corpus, jobTexts...)

	vs := fitVectorSpace(corpus)
	resumeVec := vs.transform(resumeText)

	scores := make([]float64, len(jobTexts))
	for i, jobText := range jobTexts {
		scores[i] = cosine(resumeVec, vs.transform(jobText))
	}
	return scores, nil
}
