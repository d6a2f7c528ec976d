package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"seed":       "seed",
		"Soil_Type":  "soiltype",
		"soil-type":  "soiltype",
		"SoilType":   "soiltype",
		" a b ":      "ab",
		"LOCATION_2": "location2",
	}

	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestNormalizeSingular(t *testing.T) {
	tests := map[string]string{
		"seeds":      "seed",
		"Humidities": "humidity",
		"glasses":    "glass",
		"gas":        "gas",
		"location":   "location",
		"Light_S":    "light",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeSingular(in), in)
	}
}
