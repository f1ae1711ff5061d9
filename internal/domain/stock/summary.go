package stock

// Summary counts items per stock level.
type Summary struct {
	Total   int           `json:"total"`
	ByLevel map[Level]int `json:"byLevel"`
}

// Summarize classifies every item. All levels are present in the result, zero or not.
func Summarize[T Item](items []T) Summary {
	s := Summary{ByLevel: make(map[Level]int, 3)}
	for _, l := range Levels() {
		s.ByLevel[l] = 0
	}
	for _, item := range items {
		s.ByLevel[item.CurrentBalance().Level()]++
		s.Total++
	}
	return s
}
