package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineSchema_PinsNineActs(t *testing.T) {
	schema := OutlineSchema()

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	acts, ok := props["acts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 9, acts["minItems"])
	assert.Equal(t, 9, acts["maxItems"])

	curve, ok := props["tension_curve"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 9, curve["minItems"])
	assert.Equal(t, 9, curve["maxItems"])
}

func TestChaptersSchema_ListLengthUnconstrained(t *testing.T) {
	schema := ChaptersSchema()

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	chapters, ok := props["chapters"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, chapters, "minItems")
	assert.NotContains(t, chapters, "maxItems")
}

func TestSchemas_StrictModeShape(t *testing.T) {
	for name, schema := range map[string]map[string]any{
		"premise":  PremiseSchema(),
		"outline":  OutlineSchema(),
		"chapters": ChaptersSchema(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, false, schema["additionalProperties"])

			props, ok := schema["properties"].(map[string]any)
			require.True(t, ok)

			// Strict mode wants every property in the required list
			required, ok := schema["required"].([]string)
			require.True(t, ok)
			assert.Len(t, required, len(props))
			for _, key := range required {
				assert.Contains(t, props, key)
			}
		})
	}
}
