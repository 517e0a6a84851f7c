package unit

import (
	"Meal-Planner/domain"
	"Meal-Planner/pkg/measure"
	"strings"
)

const defaultPrecision = 2

type (
	UnitService interface {
		ListUnits(category string) (domain.UnitListResponse, error)
		Convert(req domain.ConvertRequest) domain.ConvertResponse
	}

	unitService struct{}
)

func NewUnitService() UnitService {
	return &unitService{}
}

func (s *unitService) ListUnits(category string) (domain.UnitListResponse, error) {
	c := measure.Category(strings.ToLower(strings.TrimSpace(category)))
	if c == "" {
		c = measure.CategoryAll
	}

	units := measure.UnitsFor(c)
	if units == nil {
		return domain.UnitListResponse{}, domain.ErrUnknownCategory
	}
	return domain.UnitListResponse{Category: string(c), Units: units}, nil
}

// Convert picks the density from the request, then from the ingredient name,
// then the default. Units that cannot be converted give OK=false.
func (s *unitService) Convert(req domain.ConvertRequest) domain.ConvertResponse {
	density := measure.DefaultDensity
	switch {
	case req.Density != nil && *req.Density > 0:
		density = *req.Density
	case strings.TrimSpace(req.Ingredient) != "":
		density = measure.DensityFor(req.Ingredient)
	}

	precision := defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}

	res := domain.ConvertResponse{Unit: req.To, Density: density}
	converted, ok := measure.ConvertWithDensity(req.Quantity, req.From, req.To, density)
	if !ok {
		res.Display = domain.MessageUnitMismatch
		if measure.Compatible(req.From, req.To, true) {
			res.Display = domain.MessageOutOfRange
		}
		return res
	}

	rounded := measure.Round(converted, precision)
	res.OK = true
	res.Quantity = &rounded
	res.Display = measure.Format(converted, req.To, precision)
	return res
}
