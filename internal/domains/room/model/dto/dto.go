package dto

import (
	"lavender/internal/domains/room/model"
	"lavender/shared"
	"lavender/shared/constant"
	gDto "lavender/shared/dto"
	"time"
)

// RoomRequest is the full room form, used both to create and to edit a room.
type RoomRequest struct {
	Name              string           `json:"name"              validate:"required,min=3"`
	Type              model.RoomType   `json:"type"              validate:"required,enum"`
	PricePerNight     *float64         `json:"pricePerNight"     validate:"required,gte=0"`
	Capacity          int              `json:"capacity"          validate:"min=1"`
	Amenities         []string         `json:"amenities"`
	ImageURL          string           `json:"imageUrl"          validate:"omitempty,url"`
	ImageHint         string           `json:"data-ai-hint"`
	AvailabilityScore *int             `json:"availabilityScore" validate:"required,min=0,max=100"`
	Description       string           `json:"description"       validate:"required,min=10"`
	Status            model.RoomStatus `json:"status"            validate:"required,enum"`
}

func (r *RoomRequest) imageURL() string {
	if r.ImageURL == constant.Empty {
		return model.DefaultImageURL
	}

	return r.ImageURL
}

func (r *RoomRequest) ToModel(now time.Time) model.Room {
	room := model.Room{ID: shared.NewID(model.IDPrefix)}
	r.ApplyTo(&room)
	room.Stamp(now)

	return room
}

// ApplyTo overwrites every editable field of room. Id and createdAt are kept. The request must have
// passed validation, which guarantees the numeric fields are present.
func (r *RoomRequest) ApplyTo(room *model.Room) {
	room.Name = r.Name
	room.Type = r.Type
	room.PricePerNight = *r.PricePerNight
	room.Capacity = r.Capacity
	room.Amenities = shared.TrimAll(r.Amenities)
	room.ImageURL = r.imageURL()
	room.ImageHint = r.ImageHint
	room.AvailabilityScore = *r.AvailabilityScore
	room.Description = r.Description
	room.Status = r.Status
}

type UpdateRoomStatusRequest struct {
	Status model.RoomStatus `json:"status" validate:"required,enum"`
}

type RoomResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Type              model.RoomType   `json:"type"`
	PricePerNight     float64          `json:"pricePerNight"`
	Capacity          int              `json:"capacity"`
	Amenities         []string         `json:"amenities"`
	ImageURL          string           `json:"imageUrl"`
	ImageHint         string           `json:"data-ai-hint,omitempty"`
	AvailabilityScore int              `json:"availabilityScore"`
	Description       string           `json:"description"`
	Status            model.RoomStatus `json:"status"`
	gDto.Timestamps
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.ImageHint = model.ImageHint
	r.AvailabilityScore = model.AvailabilityScore
	r.Description = model.Description
	r.Status = model.Status
	r.Timestamps.FromModel(model.Timestamps)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

