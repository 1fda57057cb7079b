package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAndFind(t *testing.T) {
	r := NewRegistry()
	light := NewLight("Living Room Light")

	require.NoError(t, r.Add(light))
	require.NoError(t, r.Add(NewThermostat("Main Thermostat")))

	got, err := r.FindByName("Living Room Light")
	require.NoError(t, err)
	assert.Same(t, light, got)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_FindIsExactMatch(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(NewLight("Living Room Light")))

	for _, name := range []string{
		"living room light",
		"Living Room Light ",
		" Living Room Light",
		"Living  Room Light",
		"Living Room",
		"",
	} {
		_, err := r.FindByName(name)
		assert.ErrorIs(t, err, ErrDeviceNotFound, "name %q", name)
	}
}

func TestRegistry_NotFoundMessage(t *testing.T) {
	r := NewRegistry()

	_, err := r.FindByName("Unknown Device")
	require.Error(t, err)
	assert.Equal(t, "device not found: Unknown Device", err.Error())
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	first := NewLight("Lamp")
	require.NoError(t, r.Add(first))

	err := r.Add(NewThermostat("Lamp"))
	assert.ErrorIs(t, err, ErrDeviceExists)
	assert.Equal(t, 1, r.Len())

	got, err := r.FindByName("Lamp")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestRegistry_RejectsInvalidNames(t *testing.T) {
	r := NewRegistry()

	assert.ErrorIs(t, r.Add(NewLight("")), ErrInvalidName)
	assert.ErrorIs(t, r.Add(NewLight("   ")), ErrInvalidName)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_OrderAndRestartableIteration(t *testing.T) {
	r := NewRegistry()
	names := []string{"C", "A", "B"}
	for _, n := range names {
		require.NoError(t, r.Add(NewSecurityCamera(n)))
	}

	assert.Equal(t, names, r.Names())

	for range 2 {
		var seen []string
		for d := range r.All() {
			seen = append(seen, d.Name())
		}
		assert.Equal(t, names, seen)
	}

	// Early break is honoured.
	count := 0
	for range r.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
