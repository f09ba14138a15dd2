package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicInferenceHostnames(t *testing.T) {
	tests := []struct {
		url      string
		industry string
		jobRole  string
	}{
		{"https://cityhealthclinic.com", "Healthcare", "Registered Nurse"},
		{"https://firstbank.example.com", "Finance", "Financial Analyst"},
		{"https://acmefinance.io", "Finance", "Financial Analyst"},
		{"https://myschool.edu", "Education", "Teacher"},
		{"https://bestshop.example.com", "Retail", "Store Manager"},
		{"https://megastore.net", "Retail", "Store Manager"},
		{"https://pixelgames.gg", "Media", "Game Developer"},
		{"https://acme.example.com", "Technology", "Software Engineer"},
	}

	for _, tt := range tests {
		inf := HeuristicInference(tt.url)
		require.NotNil(t, inf, tt.url)
		assert.Equal(t, tt.industry, inf.Industry, tt.url)
		assert.Equal(t, tt.jobRole, inf.JobRole, tt.url)
		assert.Equal(t, heuristicConfidence, inf.Confidence, tt.url)
		assert.NotEmpty(t, inf.Reasoning, tt.url)
		assert.NotEmpty(t, inf.Skills, tt.url)
	}
}

func TestHeuristicInferenceUnparseableURL(t *testing.T) {
	// Falls back to matching the raw string; still never nil.
	inf := HeuristicInference("not a url at all")
	require.NotNil(t, inf)
	assert.Equal(t, "Technology", inf.Industry)
	assert.Equal(t, heuristicConfidence, inf.Confidence)
}
