package normalization

// LevenshteinDistance computes the minimum number of single-rune edits
// (insertions, deletions, substitutions) needed to turn s1 into s2.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := 0; j <= len(r2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// Similarity returns a ratio in [0, 1] derived from the Levenshtein
// distance between s1 and s2. Identical strings score 1.0.
func Similarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	longest := len([]rune(s1))
	if n := len([]rune(s2)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(LevenshteinDistance(s1, s2))/float64(longest)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
