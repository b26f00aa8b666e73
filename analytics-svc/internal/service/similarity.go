package service

import (
	"math"
	"regexp"
	"strings"

	"movierama/analytics-svc/internal/domain"
)

// Weighted blend of content signals. Genres dominate, plot keywords break
// ties between movies with similar casts.
const (
	genresWeight    = 0.4
	castWeight      = 0.3
	directorsWeight = 0.1
	yearWeight      = 0.1
	keywordWeight   = 0.1
)

var tokenPattern = regexp.MustCompile(`\w{2,}`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// docVector is a sparse, L2-normalized tf-idf vector.
type docVector map[string]float64

// tfidfVectors builds one vector per document over the shared vocabulary.
func tfidfVectors(docs []string) []docVector {
	counts := make([]map[string]int, len(docs))
	df := map[string]int{}
	for i, doc := range docs {
		c := map[string]int{}
		for _, token := range tokenize(doc) {
			c[token]++
		}
		counts[i] = c
		for term := range c {
			df[term]++
		}
	}

	total := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, n := range df {
		idf[term] = math.Log(total/float64(1+n)) + 1
	}

	vectors := make([]docVector, len(docs))
	for i, c := range counts {
		vec := docVector{}
		var norm float64
		for term, n := range c {
			val := float64(n) * idf[term]
			vec[term] = val
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// cosine is the dot product of two normalized sparse vectors.
func cosine(a, b docVector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var score float64
	for term, va := range a {
		if vb, ok := b[term]; ok {
			score += va * vb
		}
	}
	return score
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	intersection := 0
	union := len(set)
	seen := make(map[string]bool, len(b))
	for _, v := range b {
		if seen[v] {
			continue
		}
		seen[v] = true
		if set[v] {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

// yearProximity decays linearly to zero over a 30-year gap.
func yearProximity(y1, y2 int) float64 {
	if y1 == 0 || y2 == 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(float64(y1-y2))/30)
}

func sharesDirector(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if set[v] {
			return true
		}
	}
	return false
}

func similarity(target, candidate domain.Movie, targetVec, candidateVec docVector) float64 {
	score := genresWeight*jaccard(target.Genres, candidate.Genres) +
		castWeight*jaccard(target.Cast, candidate.Cast) +
		yearWeight*yearProximity(target.Year, candidate.Year) +
		keywordWeight*cosine(targetVec, candidateVec)
	if sharesDirector(target.Directors, candidate.Directors) {
		score += directorsWeight
	}
	return score
}
