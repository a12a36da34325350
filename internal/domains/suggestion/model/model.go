package model

// Request describes the stay a guest picked. Dates use the YYYY-MM-DD layout.
type Request struct {
	SelectedStartDate string  `json:"selectedStartDate"`
	SelectedEndDate   string  `json:"selectedEndDate"`
	NumberOfGuests    int     `json:"numberOfGuests"`
	CurrentPrice      float64 `json:"currentPrice"`
	AvailabilityScore int     `json:"availabilityScore"`
}

// Response tells whether other dates should be offered. The suggested fields are only set when
// ShouldSuggestAlternatives is true.
type Response struct {
	ShouldSuggestAlternatives  bool     `json:"shouldSuggestAlternatives"`
	Reason                     string   `json:"reason"`
	SuggestedStartDate         *string  `json:"suggestedStartDate,omitempty"`
	SuggestedEndDate           *string  `json:"suggestedEndDate,omitempty"`
	SuggestedPrice             *float64 `json:"suggestedPrice,omitempty"`
	SuggestedAvailabilityScore *int     `json:"suggestedAvailabilityScore,omitempty"`
}
