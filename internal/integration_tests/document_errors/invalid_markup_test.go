package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hclview/internal/markup"
	"github.com/vk/hclview/internal/testutil"
)

func TestDocumentErrors_MalformedMarkup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.view": `
column "root" {
  text_input "name_field" {
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files: files,
		Entry: "main.view",
		Model: &testutil.Person{},
	})

	// --- Assert ---
	require.Error(t, result.Err)
	var parseErr *markup.ParseError
	require.ErrorAs(t, result.Err, &parseErr)
	assert.Contains(t, parseErr.Path, "main.view")
	assert.Nil(t, result.View)
}

func TestDocumentErrors_UnknownDirectiveKey(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.view": `
text_input "name_field" {
  bind_taget = "name"
}
`,
	}

	// --- Act ---
	result := testutil.RunLoad(t, testutil.LoadSpec{
		Files: files,
		Entry: "main.view",
		Model: &testutil.Person{},
	})

	// --- Assert ---
	require.Error(t, result.Err)
	var parseErr *markup.ParseError
	require.ErrorAs(t, result.Err, &parseErr)
	assert.Contains(t, result.Err.Error(), "bind_taget")
	assert.Contains(t, result.Err.Error(), "not a recognized directive")
}
