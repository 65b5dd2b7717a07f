package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"main", ModeMain},
		{"booking", ModeBooking},
		{"cost", ModeCost},
		{"treatments", ModeTreatments},
		{"location", ModeLocation},
		{"expert", ModeExpert},
		{"stories", ModeStories},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("bogus")
	assert.Error(t, err)
}

func TestRouteIsPure(t *testing.T) {
	first := Route(ModeCost)
	second := Route(ModeCost)
	assert.Equal(t, first, second)
}

func TestRouteMainListsSixOptions(t *testing.T) {
	v := Route(ModeMain)
	assert.Len(t, v.Options, 6)
	assert.Contains(t, v.Body, "virtual assistant")
}

func TestEveryModeOffersReturnToMain(t *testing.T) {
	for _, m := range []Mode{ModeBooking, ModeCost, ModeTreatments, ModeLocation, ModeExpert, ModeStories} {
		v := Route(m)
		found := false
		for _, opt := range v.Options {
			if opt.Target == ModeMain.String() {
				found = true
			}
		}
		assert.True(t, found, "mode %s should offer a way back to main", m)
	}
}

func TestRouteCostListsTreatments(t *testing.T) {
	v := Route(ModeCost)
	assert.Contains(t, v.Body, "IVF / ICSI")
	assert.Contains(t, v.Body, "+1 (619) 555-0123")
}

func TestRouteUnknownModeFallsBackToMain(t *testing.T) {
	v := Route(Mode(42))
	assert.Equal(t, "main", v.Mode)
}
