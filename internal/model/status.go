package model

// ImageStatus represents the state of the picture area for the chosen model
type ImageStatus string

const (
	// ImageStatusIdle means no model is chosen and nothing is displayed
	ImageStatusIdle ImageStatus = "Idle"

	// ImageStatusLoading means the image is being fetched and decoded
	ImageStatusLoading ImageStatus = "Loading"

	// ImageStatusReady means the image is displayed
	ImageStatusReady ImageStatus = "Ready"

	// ImageStatusError means fetching or decoding failed
	ImageStatusError ImageStatus = "Error"
)

// String returns the string representation of ImageStatus
func (s ImageStatus) String() string {
	return string(s)
}

// IsActive returns true while a resolve is in flight
func (s ImageStatus) IsActive() bool {
	return s == ImageStatusLoading
}

// IsFinished returns true if the resolve ended (ready or error)
func (s ImageStatus) IsFinished() bool {
	return s == ImageStatusReady || s == ImageStatusError
}
