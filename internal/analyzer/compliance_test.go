package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompliancePartial(t *testing.T) {
	a := NewDefault()

	c := a.checkCompliance("Thank you for calling. We recommend an oil change.")

	assert.Equal(t, []string{"greeting", "recommendation"}, c.FoundComponents)
	assert.Equal(t, []string{"qualification", "booking", "closing"}, c.MissingComponents)
	assert.InDelta(t, 40.0, c.Score, 1e-9)

	require.Contains(t, c.Details, "greeting")
	assert.True(t, c.Details["greeting"].Found)
	assert.Equal(t, "thank you for calling", c.Details["greeting"].Keyword)

	require.Contains(t, c.Details, "booking")
	assert.False(t, c.Details["booking"].Found)
	assert.NotEmpty(t, c.Details["booking"].Expected)
}

func TestCheckComplianceEmptyEmployeeText(t *testing.T) {
	a := NewDefault()

	c := a.checkCompliance("")

	assert.Equal(t, 0.0, c.Score)
	assert.Empty(t, c.FoundComponents)
	assert.Len(t, c.MissingComponents, 5)
	assert.Len(t, c.Details, 5)
}
