package dto

import (
	"lavender/shared/constant"
	"lavender/shared/model"
	"lavender/shared/timezone"
)

type Timestamps struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Timestamps) FromModel(model model.Timestamps) {
	m.CreatedAt = FormatTime(model.CreatedAt)
	m.UpdatedAt = FormatTime(model.UpdatedAt)
}

// FormatOptional formats t, returning nil when it is unset.
func FormatOptional(t *model.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}

	formatted := FormatTime(*t)

	return &formatted
}

// FormatTime formats t the way every timestamp leaves the service.
func FormatTime(t model.Time) string {
	return timezone.Format(t.Time, constant.DateFormat)
}
