package service

import (
	"context"
	"errors"
	"fmt"

	"consultanit/cmd/internal/domain/entity"
	"consultanit/cmd/internal/domain/source"
	"consultanit/cmd/internal/infrastructure/datosgov"

	"github.com/labstack/gommon/log"
)

var ErrNotFound = errors.New("nit not found")

// NotFoundError is returned when no registry has a record of the NIT.
type NotFoundError struct {
	NIT string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no information found for NIT: %s", e.NIT)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NitService resolves a NIT into a single Company by querying the primary
// registry first and, when it has a record, the secondary registry with the
// chamber code and registration number found there.
type NitService struct {
	Primary   source.Source
	Secondary source.Source
}

func NewNitService(primary, secondary source.Source) *NitService {
	return &NitService{
		Primary:   primary,
		Secondary: secondary,
	}
}

// Lookup expects nit to be already validated.
func (s *NitService) Lookup(ctx context.Context, nit string) (*entity.Company, error) {
	primary, err := s.Primary.Query(ctx, nit, source.Hints{})
	if err != nil {
		return nil, err
	}

	var secondary source.Result
	if !primary.IsEmpty() {
		secondary, err = s.Secondary.Query(ctx, nit, source.Hints{
			ChamberCode:        primary.Get(datosgov.KeyCodigoCamara),
			RegistrationNumber: primary.Get(datosgov.KeyMatricula),
		})
		if err != nil {
			return nil, err
		}
	}

	if primary.IsEmpty() && secondary.IsEmpty() {
		return nil, &NotFoundError{NIT: nit}
	}

	company := s.merge(nit, primary, secondary)
	log.Debugf("resolved NIT %s from %v", nit, company.Fuentes)
	return company, nil
}
