package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDestinationAndSource(t *testing.T) {
	info := Extract(TravelInfo{}, "flight from Paris to Tokyo")
	assert.Equal(t, "paris", info.Source)
	assert.Equal(t, "tokyo", info.Destination)
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"Planning a trip with 2,500 USD budget", 2500},
		{"I can spend 900 dollars", 900},
		{"budget is 1,200€", 1200},
		{"around 50000 inr", 50000},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			info := Extract(TravelInfo{}, tt.message)
			assert.Equal(t, tt.want, info.Budget)
		})
	}
}

func TestExtractDates(t *testing.T) {
	info := Extract(TravelInfo{}, "traveling 5th jan 2025 until 12th jan 2025")
	require.NotNil(t, info.Dates)
	assert.Equal(t, "5th jan 2025", info.Dates.Start)
	assert.Equal(t, "12th jan 2025", info.Dates.End)
}

func TestExtractSingleDateIgnored(t *testing.T) {
	info := Extract(TravelInfo{}, "leaving on 5th jan 2025")
	assert.Nil(t, info.Dates)
}

func TestExtractThirdDateIgnored(t *testing.T) {
	info := Extract(TravelInfo{}, "5th jan 2025 then 12th jan 2025 or maybe 20th jan 2025")
	require.NotNil(t, info.Dates)
	assert.Equal(t, "5th jan 2025", info.Dates.Start)
	assert.Equal(t, "12th jan 2025", info.Dates.End)
}

func TestExtractIdempotentOnNoMatch(t *testing.T) {
	prior := TravelInfo{
		Destination: "rome",
		Source:      "oslo",
		Dates:       &DateRange{Start: "1st may 2025", End: "9th may 2025"},
		Budget:      3000,
	}
	got := Extract(prior, "what should I pack?")
	assert.Equal(t, prior, got)
}

func TestExtractOverwritesOnlyMatchedFields(t *testing.T) {
	prior := TravelInfo{Destination: "rome", Source: "oslo", Budget: 3000}
	got := Extract(prior, "actually make it to Lisbon")
	assert.Equal(t, "lisbon", got.Destination)
	assert.Equal(t, "oslo", got.Source)
	assert.Equal(t, 3000, got.Budget)
}

func TestExtractIsPure(t *testing.T) {
	prior := TravelInfo{Destination: "rome"}
	_ = Extract(prior, "fly to Madrid")
	assert.Equal(t, "rome", prior.Destination)
}
