package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	ps := All()
	require.Len(t, ps, 3)

	assert.Equal(t, "Starter", ps[0].Name)
	assert.Equal(t, 29, ps[0].Price)
	assert.Equal(t, 500, ps[0].EmailsPerDay)
	assert.False(t, ps[0].Popular)

	assert.Equal(t, "Professional", ps[1].Name)
	assert.Equal(t, 89, ps[1].Price)
	assert.Equal(t, 2000, ps[1].EmailsPerDay)
	assert.True(t, ps[1].Popular)

	assert.Equal(t, "Enterprise", ps[2].Name)
	assert.Equal(t, 299, ps[2].Price)
	assert.Equal(t, 10000, ps[2].EmailsPerDay)
	assert.False(t, ps[2].Popular)
}

func TestByID(t *testing.T) {
	p := ByID("2")
	require.NotNil(t, p)
	assert.Equal(t, "Professional", p.Name)

	assert.Nil(t, ByID("99"))
	assert.Nil(t, ByID(""))
}

func TestFeatures(t *testing.T) {
	assert.Contains(t, ByID("1").Features, "Mobile responsive design")
	assert.Contains(t, ByID("2").Features, "A/B testing templates")
	assert.Contains(t, ByID("3").Features, "Dedicated account manager")
}
