package courses

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	errPoolTooSmall = errors.New("candidate pool too small for reranking")
	errNoSelection  = errors.New("no usable selection in model response")
)

const selectionScanLines = 10

// parseSelection extracts 1-based candidate indices from a model
// response. A JSON integer array is preferred; otherwise the first
// integers found on each of the leading lines are used. Duplicates are
// dropped and at most limit indices are returned.
func parseSelection(raw string, limit int) []int {
	cleaned := stripFences(raw)

	var arr []int
	if err := json.Unmarshal([]byte(cleaned), &arr); err == nil {
		return uniqueIndices(arr, limit)
	}

	var found []int
	lines := strings.Split(cleaned, "\n")
	if len(lines) > selectionScanLines {
		lines = lines[:selectionScanLines]
	}
	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			word = strings.Trim(word, ",.;:()[]")
			n, err := strconv.Atoi(word)
			if err != nil {
				continue
			}
			found = append(found, n)
		}
	}
	return uniqueIndices(found, limit)
}

func uniqueIndices(nums []int, limit int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, n := range nums {
		if n < 1 || n > 20 || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
