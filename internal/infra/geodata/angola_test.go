package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinces_CoversAll18(t *testing.T) {
	provinces := Provinces()
	assert.Len(t, provinces, 18)

	seen := make(map[string]bool, len(provinces))
	for _, p := range provinces {
		assert.False(t, seen[p.Name], "duplicate province %s", p.Name)
		seen[p.Name] = true
		assert.NotEmpty(t, p.Municipalities, "province %s has no municipalities", p.Name)
	}

	for _, name := range []string{"Luanda", "Benguela", "Huíla", "Zaire"} {
		assert.True(t, seen[name])
	}
}

func TestProvinces_LuandaHierarchy(t *testing.T) {
	provinces := Provinces()

	var luanda *struct{}
	for i := range provinces {
		if provinces[i].Name != "Luanda" {
			continue
		}

		viana, ok := provinces[i].Municipality("Viana")
		require.True(t, ok)

		zango, ok := viana.Neighborhood("Zango 3")
		require.True(t, ok)
		assert.Equal(t, "Zango 3", zango.Name)

		_, ok = viana.Neighborhood("Nowhere")
		assert.False(t, ok)

		_, ok = provinces[i].Municipality("Lobito")
		assert.False(t, ok)

		luanda = &struct{}{}
	}
	require.NotNil(t, luanda, "Luanda province missing")
}

func TestProvinces_CallerCannotMutateCanonicalData(t *testing.T) {
	first := Provinces()
	first[0] = first[1]

	second := Provinces()
	assert.Equal(t, "Luanda", second[0].Name)
}

func TestProvinces_NestedSlicesDoNotAliasCanonicalData(t *testing.T) {
	first := Provinces()
	first[0].Municipalities[0].Name = "mutated"
	first[0].Municipalities[0].Neighborhoods[0].Name = "mutated"

	second := Provinces()
	assert.NotEqual(t, "mutated", second[0].Municipalities[0].Name)
	assert.NotEqual(t, "mutated", second[0].Municipalities[0].Neighborhoods[0].Name)
}
