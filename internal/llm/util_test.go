package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 8}\n```"
	assert.Equal(t, `{"score": 8}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFenceWithLanguage(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceDirectlyBeforeBrace(t *testing.T) {
	input := "```{\"a\": 1}```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `  {"a": 1}  `
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}
