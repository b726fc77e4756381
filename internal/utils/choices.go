package utils

// Pair — упорядоченная пара ключ/значение
type Pair struct {
	Key   string
	Value string
}

// Choice — пара (значение, ключ) для списков выбора в метаданных
type Choice [2]string

// GetChoices строит список пар (значение, ключ) из упорядоченного набора пар.
// Если передан ключ first и он присутствует в наборе, его пара перемещается
// в начало списка; иначе порядок сохраняется без изменений.
func GetChoices(data []Pair, first string) []Choice {
	choices := make([]Choice, 0, len(data))
	firstIdx := -1
	for i, p := range data {
		if first != "" && p.Key == first {
			firstIdx = i
		}
		choices = append(choices, Choice{p.Value, p.Key})
	}

	if firstIdx > 0 {
		moved := choices[firstIdx]
		choices = append(choices[:firstIdx], choices[firstIdx+1:]...)
		choices = append([]Choice{moved}, choices...)
	}

	return choices
}
