package domain

import "errors"

var (
	MessageSuccessGetUnits = "success get units"
	MessageSuccessConvert  = "success convert quantity"

	MessageFailedGetUnits = "failed to get units"
	MessageFailedConvert  = "failed to convert quantity"

	ErrUnknownCategory = errors.New("unknown unit category")
)

type (
	ConvertRequest struct {
		Quantity   float64  `json:"quantity"`
		From       string   `json:"from" validate:"required,unit"`
		To         string   `json:"to" validate:"required,unit"`
		Density    *float64 `json:"density" validate:"omitempty,gt=0"`
		Ingredient string   `json:"ingredient"`
		Precision  *int     `json:"precision" validate:"omitempty,min=0,max=6"`
	}

	// ConvertResponse reports incompatible units with OK=false instead of an error.
	ConvertResponse struct {
		OK       bool     `json:"ok"`
		Quantity *float64 `json:"quantity,omitempty"`
		Unit     string   `json:"unit"`
		Display  string   `json:"display"`
		Density  float64  `json:"density"`
	}

	UnitListResponse struct {
		Category string   `json:"category"`
		Units    []string `json:"units"`
	}
)
