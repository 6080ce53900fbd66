package dto

import (
	md "github.com/indianiiot/telemetry-backend/internal/models"
)

// IngestRequest is what the firmware posts. Every sensor field is
// optional, the classifier substitutes harmless defaults for absent ones.
type IngestRequest struct {
	DeviceID    string   `json:"device_id"   validate:"required"`
	Gas         *float64 `json:"gas"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Distance    *float64 `json:"distance"`
}

type CreateLDRReadingRequest struct {
	DigitalValue bool `json:"digital_value"`
	AnalogValue  int  `json:"analog_value"`
}

type CreateOutputRequest struct {
	OutputName string `json:"output_name" validate:"required"`
	GpioPin    int    `json:"gpio_pin"    validate:"gte=0"`
	IsActive   bool   `json:"is_active"`
}

type UpdateOutputRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type PaginatedSensorDataResponse struct {
	Data        []*md.SensorData `json:"data"`
	Count       int64            `json:"count"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasNextPage bool             `json:"hasNextPage"`
}
