package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := map[float64]string{
		0:           "0.00",
		12.5:        "12.50",
		999.999:     "1,000.00",
		1234567.891: "1,234,567.89",
		-4321.5:     "-4,321.50",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatMoney(in), "FormatMoney(%v)", in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+50.0%", FormatPercent(50))
	assert.Equal(t, "-20.0%", FormatPercent(-20))
	assert.Equal(t, "+0.0%", FormatPercent(0))
}

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)

	_, err = PrettyJSON([]byte(`{`))
	assert.Error(t, err)
}

func TestNewRunID(t *testing.T) {
	id, err := NewRunID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
}
