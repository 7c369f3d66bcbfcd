// Package impl contains the application-specific business rules implementations.
package impl

import (
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	domainerrors "github.com/cacupatiago-web/frotaapp-sub000/internal/domain/errors"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"
)

type regionsService struct {
	provinces []entity.Province
}

// NewRegionsService creates a regions service over the static hierarchy.
// The hierarchy is captured once and never mutated afterwards.
func NewRegionsService(provinces []entity.Province) usecase.RegionsUsecase {
	return &regionsService{provinces: provinces}
}

// Provinces lists the top level of the hierarchy.
func (s *regionsService) Provinces() []string {
	names := make([]string, 0, len(s.provinces))
	for _, p := range s.provinces {
		names = append(names, p.Name)
	}

	return names
}

// Municipalities lists the subdivisions of a province.
func (s *regionsService) Municipalities(province string) ([]string, error) {
	p, ok := s.province(province)
	if !ok {
		return nil, domainerrors.ErrProvinceNotFound
	}

	names := make([]string, 0, len(p.Municipalities))
	for _, m := range p.Municipalities {
		names = append(names, m.Name)
	}

	return names, nil
}

// Neighborhoods lists the leaves under a province and municipality.
func (s *regionsService) Neighborhoods(province, municipality string) ([]string, error) {
	p, ok := s.province(province)
	if !ok {
		return nil, domainerrors.ErrProvinceNotFound
	}

	m, ok := p.Municipality(municipality)
	if !ok {
		return nil, domainerrors.ErrMunicipalityNotFound
	}

	names := make([]string, 0, len(m.Neighborhoods))
	for _, n := range m.Neighborhoods {
		names = append(names, n.Name)
	}

	return names, nil
}

// ComposeLabel builds a location label from picker selections, validating
// each segment against the hierarchy before joining.
func (s *regionsService) ComposeLabel(province, municipality, neighborhood string) (string, error) {
	if province == "" {
		return "", domainerrors.ErrEmptyLabel
	}

	p, ok := s.province(province)
	if !ok {
		return "", domainerrors.ErrProvinceNotFound
	}

	if municipality == "" {
		if neighborhood != "" {
			// A neighborhood cannot be selected without its municipality.
			return "", domainerrors.ErrMunicipalityNotFound
		}

		return entity.BuildLabel(p.Name), nil
	}

	m, ok := p.Municipality(municipality)
	if !ok {
		return "", domainerrors.ErrMunicipalityNotFound
	}

	if neighborhood == "" {
		return entity.BuildLabel(p.Name, m.Name), nil
	}

	n, ok := m.Neighborhood(neighborhood)
	if !ok {
		return "", domainerrors.ErrNeighborhoodNotFound
	}

	return entity.BuildLabel(p.Name, m.Name, n.Name), nil
}

func (s *regionsService) province(name string) (entity.Province, bool) {
	for _, p := range s.provinces {
		if p.Name == name {
			return p, true
		}
	}

	return entity.Province{}, false
}
