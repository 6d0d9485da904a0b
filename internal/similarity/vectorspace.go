package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/job-match-engine/internal/normalize"
)

// Vector space configuration. The vocabulary cap bounds memory on large job
// sets; the document-frequency cutoff drops terms too common to
// discriminate.
const (
	minNGram      = 1
	maxNGram      = 3
	maxVocabulary = 5000
	maxDocFreq    = 0.8

	// minDocsForDocFreqCut guards the degenerate corpus: with two documents
	// the 0.8 cutoff would discard every shared term and similarity would
	// always be zero.
	minDocsForDocFreqCut = 3
)

// vectorSpace is a TF-IDF term weighting model fit jointly over one corpus
// (the resume plus every job blob). Fit once per matching call and
// discarded afterward; IDF consistency requires the shared corpus.
type vectorSpace struct {
	vocabulary map[string]int
	idf        []float64
}

// terms extracts the 1..3-gram terms of a document, with stop words removed
// at the token level before n-grams are formed.
func terms(text string) []string {
	raw := normalize.Tokens(text)
	tokens := raw[:0:0]
	for _, tok := range raw {
		if !stopWords[tok] {
			tokens = append(tokens, tok)
		}
	}

	var out []string
	for n := minNGram; n <= maxNGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// fitVectorSpace builds the shared vocabulary and IDF weights from the
// combined corpus.
func fitVectorSpace(docs []string) *vectorSpace {
	docTerms := make([][]string, len(docs))
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		ts := terms(doc)
		docTerms[i] = ts
		seen := make(map[string]bool, len(ts))
		for _, t := range ts {
			corpusFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	// Drop over-common terms, then cap the vocabulary by corpus frequency.
	cutoff := len(docs) + 1
	if len(docs) >= minDocsForDocFreqCut {
		cutoff = int(maxDocFreq * float64(len(docs)))
	}
	kept := make([]string, 0, len(docFreq))
	for t, df := range docFreq {
		if df <= cutoff {
			kept = append(kept, t)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if corpusFreq[kept[i]] != corpusFreq[kept[j]] {
			return corpusFreq[kept[i]] > corpusFreq[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > maxVocabulary {
		kept = kept[:maxVocabulary]
	}

	vs := &vectorSpace{
		vocabulary: make(map[string]int, len(kept)),
		idf:        make([]float64, len(kept)),
	}
	n := float64(len(docs))
	for i, t := range kept {
		vs.vocabulary[t] = i
		// Smoothed IDF; never zero, so every vocabulary term contributes.
		vs.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return vs
}

// transform maps a document to an L2-normalized sparse TF-IDF vector.
// Accumulation runs over sorted indices, never raw map order: float addition
// is not associative, so a fixed summation order is what makes identical
// inputs produce bit-identical scores.
func (vs *vectorSpace) transform(text string) map[int]float64 {
	vec := make(map[int]float64)
	for _, t := range terms(text) {
		if idx, ok := vs.vocabulary[t]; ok {
			vec[idx]++
		}
	}
	idxs := sortedIndices(vec)
	var norm float64
	for _, idx := range idxs {
		vec[idx] *= vs.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for _, idx := range idxs {
			vec[idx] /= norm
		}
	}
	return vec
}

// cosine computes cosine similarity between two L2-normalized sparse
// vectors. The dot product is summed over the smaller vector's sorted
// indices for the same determinism reason as transform.
func cosine(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for _, idx := range sortedIndices(a) {
		dot += a[idx] * b[idx]
	}
	// Clamp float drift into [0, 1].
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

func sortedIndices(vec map[int]float64) []int {
	idxs := make([]int, 0, len(vec))
	for idx := range vec {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}
