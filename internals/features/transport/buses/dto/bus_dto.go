// file: internals/features/transport/buses/dto/bus_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/transport/buses/model"
)

type BusStopRequest struct {
	Name string  `json:"bus_stop_name" validate:"required,max=120"`
	Time *string `json:"bus_stop_time" validate:"omitempty,len=5"` // "HH:MM"
}

type CreateBusRequest struct {
	Number      string           `json:"bus_number" validate:"required,max=20"`
	DriverName  string           `json:"bus_driver_name" validate:"required,max=120"`
	DriverPhone *string          `json:"bus_driver_phone" validate:"omitempty,max=20"`
	RouteName   *string          `json:"bus_route_name" validate:"omitempty,max=120"`
	Capacity    *int             `json:"bus_capacity" validate:"omitempty,min=1"`
	Stops       []BusStopRequest `json:"bus_stops" validate:"omitempty,dive"`
}

func (r *CreateBusRequest) ToModel() *model.BusModel {
	return &model.BusModel{
		BusNumber:      strings.TrimSpace(r.Number),
		BusDriverName:  strings.TrimSpace(r.DriverName),
		BusDriverPhone: r.DriverPhone,
		BusRouteName:   r.RouteName,
		BusCapacity:    r.Capacity,
	}
}

type UpdateBusRequest struct {
	Number      *string `json:"bus_number" validate:"omitempty,max=20"`
	DriverName  *string `json:"bus_driver_name" validate:"omitempty,max=120"`
	DriverPhone *string `json:"bus_driver_phone" validate:"omitempty,max=20"`
	RouteName   *string `json:"bus_route_name" validate:"omitempty,max=120"`
	Capacity    *int    `json:"bus_capacity" validate:"omitempty,min=1"`

	// nil = halte tidak disentuh; non-nil (termasuk kosong) = replace-set
	Stops *[]BusStopRequest `json:"bus_stops" validate:"omitempty,dive"`
}

func (r *UpdateBusRequest) ApplyTo(m *model.BusModel) {
	if r.Number != nil {
		m.BusNumber = strings.TrimSpace(*r.Number)
	}
	if r.DriverName != nil {
		m.BusDriverName = strings.TrimSpace(*r.DriverName)
	}
	if r.DriverPhone != nil {
		m.BusDriverPhone = r.DriverPhone
	}
	if r.RouteName != nil {
		m.BusRouteName = r.RouteName
	}
	if r.Capacity != nil {
		m.BusCapacity = r.Capacity
	}
	m.BusUpdatedAt = time.Now()
}

// BuildStops menurunkan urutan halte dari index array (1-based).
func BuildStops(busID uuid.UUID, reqs []BusStopRequest) []model.BusStopModel {
	rows := make([]model.BusStopModel, 0, len(reqs))
	for i, s := range reqs {
		rows = append(rows, model.BusStopModel{
			BusStopBusID: busID,
			BusStopName:  s.Name,
			BusStopTime:  s.Time,
			BusStopOrder: i + 1,
		})
	}
	return rows
}
