package inspections

import (
	"context"
	"strings"
	"time"

	"transporte-service/internal/domain/inspection"
	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Service runs the multi-step inspection workflow: open an inspection for an
// existing vehicle, attach photo references, print the report, close it.
type Service struct {
	inspections inspection.Repository
	vehicles    vehicle.Repository
	logger      *zap.Logger
}

func NewService(inspections inspection.Repository, vehicles vehicle.Repository, logger *zap.Logger) *Service {
	return &Service{inspections: inspections, vehicles: vehicles, logger: logger}
}

// Create opens an inspection for the vehicle with the given serial. The
// folio is a ULID so it sorts by creation time.
func (s *Service) Create(ctx context.Context, inspectorID int64, req *inspection.CreateInspectionRequest) (*inspection.Inspection, error) {
	serial := strings.TrimSpace(req.Serial)
	if serial == "" {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "numero_serie is required")
	}

	v, err := s.vehicles.FindBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}

	in := &inspection.Inspection{
		Folio:       ulid.Make().String(),
		VehicleID:   v.ID,
		Serial:      v.Serial,
		InspectorID: inspectorID,
		Status:      inspection.StatusOpen,
		Photos:      []string{},
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := s.inspections.Create(ctx, in); err != nil {
		return nil, err
	}

	s.logger.Info("inspection opened",
		zap.String("folio", in.Folio),
		zap.Int64("vehicle_id", in.VehicleID),
		zap.Int64("inspector_id", inspectorID),
	)
	return in, nil
}

// AttachPhoto adds one photo URL. The first photo moves the inspection from
// abierta to con_fotos.
func (s *Service) AttachPhoto(ctx context.Context, folio, photoURL string) (*inspection.Inspection, error) {
	in, err := s.inspections.FindByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}

	if err := inspection.ApplyTransition(in, inspection.StatusPhotos, time.Now()); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrConflict, err.Error())
	}
	if err := s.inspections.AppendPhoto(ctx, folio, photoURL, in.Status); err != nil {
		return nil, err
	}
	in.Photos = append(in.Photos, photoURL)
	return in, nil
}

// Print marks the inspection report as printed.
func (s *Service) Print(ctx context.Context, folio string) (*inspection.Inspection, error) {
	return s.transition(ctx, folio, inspection.StatusPrinted)
}

// Finalize closes the inspection; closed inspections are immutable.
func (s *Service) Finalize(ctx context.Context, folio string) (*inspection.Inspection, error) {
	in, err := s.transition(ctx, folio, inspection.StatusClosed)
	if err != nil {
		return nil, err
	}
	s.logger.Info("inspection closed", zap.String("folio", folio))
	return in, nil
}

func (s *Service) Get(ctx context.Context, folio string) (*inspection.Inspection, error) {
	return s.inspections.FindByFolio(ctx, folio)
}

func (s *Service) transition(ctx context.Context, folio string, to inspection.Status) (*inspection.Inspection, error) {
	in, err := s.inspections.FindByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	if err := inspection.ApplyTransition(in, to, time.Now()); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrConflict, err.Error())
	}
	if err := s.inspections.UpdateStatus(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}
