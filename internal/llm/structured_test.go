package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

func TestExtractJSONArray_CleanArray(t *testing.T) {
	raw := `[{"name": "Configure taxes", "hours": 4}, {"name": "Import data", "hours": 8}]`

	items, err := ExtractJSONArray[testItem](raw, nil)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Configure taxes", items[0].Name)
	assert.Equal(t, 8, items[1].Hours)
}

func TestExtractJSONArray_FencedWithLanguageTag(t *testing.T) {
	raw := "Here are the tasks:\n```json\n[{\"name\": \"Setup\", \"hours\": 2}]\n```\nLet me know if you need more."

	items, err := ExtractJSONArray[testItem](raw, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Setup", items[0].Name)
}

func TestExtractJSONArray_ConversationalWrapper(t *testing.T) {
	raw := `Sure! Based on the project context, I suggest: [{"name": "Review workflows", "hours": 3}] Hope this helps.`

	items, err := ExtractJSONArray[testItem](raw, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestExtractJSONArray_NestedArraysBalanced(t *testing.T) {
	raw := `[{"name": "a [special] task", "hours": 1}]`

	items, err := ExtractJSONArray[testItem](raw, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a [special] task", items[0].Name)
}

func TestExtractJSONArray_LineComments(t *testing.T) {
	raw := "[\n  // suggested task\n  {\"name\": \"Audit\", \"hours\": 5}\n]"

	items, err := ExtractJSONArray[testItem](raw, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Audit", items[0].Name)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := ExtractJSONArray[testItem]("I could not generate any tasks.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_Unbalanced(t *testing.T) {
	_, err := ExtractJSONArray[testItem](`[{"name": "broken"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_MalformedJSON(t *testing.T) {
	_, err := ExtractJSONArray[testItem](`[{name: Setup}]`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_ValidatorRejects(t *testing.T) {
	raw := `[{"name": "", "hours": 0}]`

	_, err := ExtractJSONArray[testItem](raw, func(items []testItem) error {
		for _, it := range items {
			if it.Name == "" {
				return errors.New("empty name")
			}
		}
		return nil
	})

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_EmptyArray(t *testing.T) {
	items, err := ExtractJSONArray[testItem]("[]", nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}
