package model

import "testing"

func TestImageStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ImageStatus
		expected bool
	}{
		{ImageStatusIdle, false},
		{ImageStatusLoading, true},
		{ImageStatusReady, false},
		{ImageStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ImageStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestImageStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ImageStatus
		expected bool
	}{
		{ImageStatusIdle, false},
		{ImageStatusLoading, false},
		{ImageStatusReady, true},
		{ImageStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ImageStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestImageStatus_String(t *testing.T) {
	status := ImageStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("ImageStatus.String() = %s, expected %s", result, expected)
	}
}
