package utils

import (
	"Meal-Planner/pkg/measure"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("unit", validateUnit)
}

// validateUnit accepts the recognised unit vocabulary. An empty string clears a unit.
func validateUnit(fl validator.FieldLevel) bool {
	unit := fl.Field().String()
	return unit == "" || measure.IsKnown(unit)
}
