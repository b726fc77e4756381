package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetChoices(t *testing.T) {
	data := []Pair{{Key: "key1", Value: "val1"}, {Key: "key2", Value: "val2"}}

	choices := GetChoices(data, "")

	assert.Equal(t, []Choice{{"val1", "key1"}, {"val2", "key2"}}, choices)
}

func TestGetChoicesSingle(t *testing.T) {
	data := []Pair{{Key: "key1", Value: "val1"}}

	choices := GetChoices(data, "")

	assert.Equal(t, []Choice{{"val1", "key1"}}, choices)
}

func TestGetChoicesFirst(t *testing.T) {
	data := []Pair{{Key: "key1", Value: "val1"}, {Key: "key2", Value: "val2"}}

	choices := GetChoices(data, "key2")

	assert.Equal(t, []Choice{{"val2", "key2"}, {"val1", "key1"}}, choices)
}

func TestGetChoicesFirstInvalidKey(t *testing.T) {
	data := []Pair{{Key: "key1", Value: "val1"}, {Key: "key2", Value: "val2"}}

	choices := GetChoices(data, "invalid_key")

	assert.Equal(t, []Choice{{"val1", "key1"}, {"val2", "key2"}}, choices)
}
