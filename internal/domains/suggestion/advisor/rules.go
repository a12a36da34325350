package advisor

import (
	"context"
	"lavender/internal/domains/suggestion/model"
	"lavender/shared/constant"
	"lavender/shared/timezone"
	"math"
	"strings"
)

const (
	lowAvailabilityScore  = 50
	minSuggestedScore     = 70
	suggestedPriceFactor  = 0.9
	defaultHighPrice      = 30000
	noSuggestionReason    = "Your selected dates seem optimal for price and availability."
	lowAvailabilityReason = "Availability is low for the selected dates."
	highPriceReason       = "The price for the selected dates is high."
	followingWeekReason   = "The same stay one week later offers better value."
)

type rulesAdvisor struct {
	highPrice float64
}

// NewRules returns an advisor that moves stays with low availability or a high price one week later.
func NewRules(highPrice float64) Advisor {
	if highPrice <= 0 {
		highPrice = defaultHighPrice
	}

	return &rulesAdvisor{highPrice: highPrice}
}

func (a *rulesAdvisor) Suggest(_ context.Context, req model.Request) (model.Response, error) {
	var reasons []string

	if req.AvailabilityScore < lowAvailabilityScore {
		reasons = append(reasons, lowAvailabilityReason)
	}

	if req.CurrentPrice > a.highPrice {
		reasons = append(reasons, highPriceReason)
	}

	if len(reasons) == 0 {
		return model.Response{Reason: noSuggestionReason}, nil
	}

	start, err := timezone.ParseDate(req.SelectedStartDate)
	if err != nil {
		return model.Response{}, err //nolint:wrapcheck
	}

	end, err := timezone.ParseDate(req.SelectedEndDate)
	if err != nil {
		return model.Response{}, err //nolint:wrapcheck
	}

	suggestedStart := timezone.Format(start.AddDate(0, 0, constant.DaysPerWeek), constant.CalendarDateFormat)
	suggestedEnd := timezone.Format(end.AddDate(0, 0, constant.DaysPerWeek), constant.CalendarDateFormat)
	suggestedPrice := math.Round(req.CurrentPrice*suggestedPriceFactor*100) / 100
	suggestedScore := max(req.AvailabilityScore, minSuggestedScore)

	return model.Response{
		ShouldSuggestAlternatives:  true,
		Reason:                     strings.Join(append(reasons, followingWeekReason), " "),
		SuggestedStartDate:         &suggestedStart,
		SuggestedEndDate:           &suggestedEnd,
		SuggestedPrice:             &suggestedPrice,
		SuggestedAvailabilityScore: &suggestedScore,
	}, nil
}
