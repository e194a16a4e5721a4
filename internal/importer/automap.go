package importer

import "sort"

// sampleRows is how many leading rows feed the column type detector.
const sampleRows = 10

// scoreThreshold is the minimum detector confidence for a candidate to be
// considered at all.
const scoreThreshold = 0.5

// Decision records one auto-map candidate and whether the greedy assignment
// took it. Rejected candidates lost either their column or their field to a
// higher-scoring candidate.
type Decision struct {
	Column   int     `json:"column"`
	Field    Field   `json:"field"`
	Score    float64 `json:"score"`
	Accepted bool    `json:"accepted"`
}

// AutoMap inspects the grid and proposes a column mapping: at most one field
// per column, at most one column per field. Candidates are taken greedily in
// order of score; ties break by lower column index, then field declaration
// order, so the result is deterministic for any input.
func AutoMap(rows [][]string) (Mapping, []Decision) {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	var candidates []Decision
	for col := 0; col < columns; col++ {
		var samples []string
		for i := 0; i < len(rows) && i < sampleRows; i++ {
			if col < len(rows[i]) {
				samples = append(samples, rows[i][col])
			}
		}
		for field, score := range DetectColumnTypes(samples) {
			if score > scoreThreshold {
				candidates = append(candidates, Decision{Column: col, Field: field, Score: score})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Column != candidates[j].Column {
			return candidates[i].Column < candidates[j].Column
		}
		return fieldRank[candidates[i].Field] < fieldRank[candidates[j].Field]
	})

	mapping := make(Mapping)
	usedFields := make(map[Field]bool)
	decisions := make([]Decision, 0, len(candidates))
	for _, c := range candidates {
		if _, taken := mapping[c.Column]; !taken && !usedFields[c.Field] {
			mapping[c.Column] = c.Field
			usedFields[c.Field] = true
			c.Accepted = true
		}
		decisions = append(decisions, c)
	}
	return mapping, decisions
}
