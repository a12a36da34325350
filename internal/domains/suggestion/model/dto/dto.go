package dto

import (
	"lavender/internal/domains/suggestion/model"
	"lavender/shared/failure"
	"lavender/shared/timezone"
	"lavender/shared/validator"
)

const (
	invalidSuggestionMessage = "Invalid suggestion request. Please check all fields."
	endBeforeStartMessage    = "End date must be after start date."
)

type SuggestAlternativeDatesRequest struct {
	SelectedStartDate string   `json:"selectedStartDate" validate:"required,datetime=2006-01-02"`
	SelectedEndDate   string   `json:"selectedEndDate"   validate:"required,datetime=2006-01-02"`
	NumberOfGuests    int      `json:"numberOfGuests"    validate:"min=1"`
	CurrentPrice      *float64 `json:"currentPrice"      validate:"required,gte=0"`
	AvailabilityScore *int     `json:"availabilityScore" validate:"required,min=0,max=100"`
}

// Validate checks the fields and that the stay ends after it starts.
func (s *SuggestAlternativeDatesRequest) Validate() error {
	if err := validator.ValidateStruct(s); err != nil {
		return failure.Summarize(err, invalidSuggestionMessage) // nolint:wrapcheck
	}

	start, _ := timezone.ParseDate(s.SelectedStartDate)
	end, _ := timezone.ParseDate(s.SelectedEndDate)

	if !end.After(start) {
		return failure.Validation(invalidSuggestionMessage, map[string][]string{ // nolint:wrapcheck
			"selectedEndDate": {endBeforeStartMessage},
		})
	}

	return nil
}

// ToModel must only be called on a validated request.
func (s *SuggestAlternativeDatesRequest) ToModel() model.Request {
	return model.Request{
		SelectedStartDate: s.SelectedStartDate,
		SelectedEndDate:   s.SelectedEndDate,
		NumberOfGuests:    s.NumberOfGuests,
		CurrentPrice:      *s.CurrentPrice,
		AvailabilityScore: *s.AvailabilityScore,
	}
}

type SuggestionResponse = model.Response
