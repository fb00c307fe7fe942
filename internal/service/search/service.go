package search

import (
	"context"
	"fmt"
	"strings"

	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Query is the tagged variant describing which search runs. Exactly one
// variant applies per request; dispatch happens in one place instead of
// falling through optional filters.
type Query interface {
	isQuery()
}

type ByConcession struct {
	ConcessionID int64
	Page         Page
}

type ByPlate struct {
	Plate string
	Page  Page
}

type All struct {
	Page Page
}

func (ByConcession) isQuery() {}
func (ByPlate) isQuery()      {}
func (All) isQuery()          {}

type Page struct {
	Number int
	Size   int
}

func (p Page) normalized() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 || p.Size > 100 {
		p.Size = 20
	}
	return p
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

type Service struct {
	vehicles vehicle.Repository
	logger   *zap.Logger
}

func NewService(vehicles vehicle.Repository, logger *zap.Logger) *Service {
	return &Service{vehicles: vehicles, logger: logger}
}

// ParseQuery builds the variant from the optional request filters. Supplying
// both filters is ambiguous and rejected rather than silently prioritized.
func ParseQuery(concessionID int64, plate string, page Page) (Query, error) {
	plate = strings.TrimSpace(plate)
	switch {
	case concessionID > 0 && plate != "":
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "concesion and placa filters are mutually exclusive")
	case concessionID > 0:
		return ByConcession{ConcessionID: concessionID, Page: page}, nil
	case plate != "":
		return ByPlate{Plate: plate, Page: page}, nil
	default:
		return All{Page: page}, nil
	}
}

// FindBySerial returns one vehicle by its serial.
func (s *Service) FindBySerial(ctx context.Context, serial string) (*vehicle.Vehicle, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "numero_serie is required")
	}
	return s.vehicles.FindBySerial(ctx, serial)
}

func (s *Service) Search(ctx context.Context, q Query) (*vehicle.SearchResult, error) {
	var (
		summaries []vehicle.Summary
		total     int64
		page      Page
		err       error
	)

	switch q := q.(type) {
	case ByConcession:
		page = q.Page.normalized()
		summaries, total, err = s.vehicles.SearchByConcession(ctx, q.ConcessionID, page.offset(), page.Size)
	case ByPlate:
		page = q.Page.normalized()
		summaries, total, err = s.vehicles.SearchByPlate(ctx, q.Plate, page.offset(), page.Size)
	case All:
		page = q.Page.normalized()
		summaries, total, err = s.vehicles.SearchAll(ctx, page.offset(), page.Size)
	default:
		return nil, fmt.Errorf("unknown search query %T: %w", q, xerrors.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))
	return &vehicle.SearchResult{
		Vehicles:   summaries,
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: totalPages,
	}, nil
}
