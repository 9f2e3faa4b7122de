package element

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/fprim/pkg/model"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		expected model.Element
	}{
		{"Fe", model.Element{Name: "Fe", AtomicNumber: 26}},
		{"fe", model.Element{Name: "Fe", AtomicNumber: 26}},
		{"ZN", model.Element{Name: "Zn", AtomicNumber: 30}},
		{"H", model.Element{Name: "H", AtomicNumber: 1}},
		{"d", model.Element{Name: "D", AtomicNumber: 1}},
		{"U", model.Element{Name: "U", AtomicNumber: 92}},
		{"Og", model.Element{Name: "Og", AtomicNumber: 118}},
	}
	for _, c := range cases {
		elem, err := Resolve(c.name)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.expected, elem, c.name)
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"Xx", "X", "", "Iron", "F e"} {
		_, err := Resolve(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrUnknownElement), name)

		var unknownErr *UnknownElementError
		require.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, name, unknownErr.Name)
	}

	_, err := Resolve("Xx")
	assert.Equal(t, "element name not recognized: 'Xx'", err.Error())
}

func TestPeriodicTableResolver(t *testing.T) {
	var resolver Resolver = PeriodicTable{}
	elem, err := resolver.Resolve("cu")
	require.NoError(t, err)
	assert.Equal(t, 29, elem.AtomicNumber)
}

func TestSymbol(t *testing.T) {
	symbol, ok := Symbol(26)
	assert.True(t, ok)
	assert.Equal(t, "Fe", symbol)

	assert.Equal(t, 118, MaxAtomicNumber)
	for _, z := range []int{0, -1, 119} {
		_, ok = Symbol(z)
		assert.False(t, ok)
	}
}
