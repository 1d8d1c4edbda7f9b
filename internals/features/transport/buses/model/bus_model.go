// file: internals/features/transport/buses/model/bus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusModel struct {
	BusID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bus_id" json:"bus_id"`
	BusNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_buses_number;column:bus_number" json:"bus_number"`

	BusDriverName  string  `gorm:"type:varchar(120);not null;column:bus_driver_name" json:"bus_driver_name"`
	BusDriverPhone *string `gorm:"type:varchar(20);column:bus_driver_phone" json:"bus_driver_phone,omitempty"`
	BusRouteName   *string `gorm:"type:varchar(120);column:bus_route_name" json:"bus_route_name,omitempty"`
	BusCapacity    *int    `gorm:"column:bus_capacity" json:"bus_capacity,omitempty"`

	BusCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:bus_created_at" json:"bus_created_at"`
	BusUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:bus_updated_at" json:"bus_updated_at"`
	BusDeletedAt gorm.DeletedAt `gorm:"column:bus_deleted_at;index" json:"bus_deleted_at,omitempty"`

	// Halte terurut; di-replace utuh saat update (delete semua lalu insert).
	BusStops []BusStopModel `gorm:"foreignKey:BusStopBusID;references:BusID;constraint:OnDelete:CASCADE" json:"bus_stops,omitempty"`
}

func (BusModel) TableName() string { return "buses" }

type BusStopModel struct {
	BusStopID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bus_stop_id" json:"bus_stop_id"`
	BusStopBusID uuid.UUID `gorm:"type:uuid;not null;column:bus_stop_bus_id;index:idx_bus_stops_bus" json:"bus_stop_bus_id"`

	BusStopName  string  `gorm:"type:varchar(120);not null;column:bus_stop_name" json:"bus_stop_name"`
	BusStopTime  *string `gorm:"type:varchar(5);column:bus_stop_time" json:"bus_stop_time,omitempty"` // "HH:MM"
	BusStopOrder int     `gorm:"not null;column:bus_stop_order" json:"bus_stop_order"`                // 1-based

	BusStopCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:bus_stop_created_at" json:"bus_stop_created_at"`
}

func (BusStopModel) TableName() string { return "bus_stops" }
