package modification

import (
	"context"
	"strings"
	"time"

	"transporte-service/internal/domain/audit"
	"transporte-service/internal/domain/catalog"
	"transporte-service/internal/domain/insurance"
	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DB opens transactions on the vehicle database.
type DB interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

// CacheInvalidator drops the cached listing of a catalog after the workflow
// created new rows in it. Invalidation is best effort: a stale cache entry
// expires on its own TTL.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, kind catalog.Kind) error
}

// Service coordinates the vehicle/insurance modification workflow: catalog
// resolution, category resolution, the vehicle update and the audit write run
// inside one vehicle-database transaction; the insurance upsert runs against
// the concession database only after that transaction committed.
type Service struct {
	db         DB
	catalogs   catalog.Repository
	categories catalog.CategoryRepository
	vehicles   vehicle.Repository
	audits     audit.Repository
	insurances insurance.Repository
	users      audit.UserResolver
	cache      CacheInvalidator
	timeout    time.Duration
	logger     *zap.Logger
}

func NewService(
	db DB,
	catalogs catalog.Repository,
	categories catalog.CategoryRepository,
	vehicles vehicle.Repository,
	audits audit.Repository,
	insurances insurance.Repository,
	users audit.UserResolver,
	cache CacheInvalidator,
	timeout time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		db:         db,
		catalogs:   catalogs,
		categories: categories,
		vehicles:   vehicles,
		audits:     audits,
		insurances: insurances,
		users:      users,
		cache:      cache,
		timeout:    timeout,
		logger:     logger,
	}
}

// ModifyVehicle runs the whole workflow for one request. On a partial
// success (vehicle committed, insurance failed) it returns BOTH a non-nil
// result and an error wrapping xerrors.ErrInsurancePartial, so callers can
// tell the vehicle side did persist.
func (s *Service) ModifyVehicle(ctx context.Context, userID int64, req *vehicle.ModifyVehicleRequest) (*vehicle.ModifyVehicleResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	actor, err := s.users.ResolveActingUser(ctx, userID)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to resolve acting user")
	}

	wf := newWorkflow()
	attrs := &req.Attributes

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		wf.abort()
		return nil, xerrors.Wrapf(xerrors.ErrTransaction, err)
	}
	defer tx.Rollback(ctx)

	// Catalog resolution (find-or-create, inside the transaction).
	if err := wf.to(StateLookupsResolving); err != nil {
		return nil, err
	}
	lr := &lookupResolver{catalogs: s.catalogs}
	ids, err := lr.resolve(ctx, tx, attrs)
	if err != nil {
		wf.abort()
		return nil, xerrors.Wrapf(xerrors.ErrLookupCreation, err)
	}

	// Category resolution. Its make/submodel ids win over the plain ones.
	if err := wf.to(StateCategoryResolving); err != nil {
		return nil, err
	}
	cr := &categoryResolver{catalogs: s.catalogs, categories: s.categories}
	cat, err := cr.resolve(ctx, tx, attrs)
	if err != nil {
		wf.abort()
		return nil, xerrors.Wrapf(xerrors.ErrLookupCreation, err)
	}

	rec := buildRecord(attrs, ids, cat)

	// Vehicle update, keyed by serial. Unknown serial is a distinct error.
	if err := wf.to(StateVehicleUpdating); err != nil {
		return nil, err
	}
	vehicleID, err := s.vehicles.UpdateBySerialWithTx(ctx, tx, attrs.Serial, rec)
	if err != nil {
		wf.abort()
		return nil, err
	}

	// Audit write, same transaction.
	if err := wf.to(StateAuditWriting); err != nil {
		return nil, err
	}
	entry := &audit.Entry{
		VehicleID:    vehicleID,
		Serial:       attrs.Serial,
		UserID:       actor.UserID,
		ProfileID:    actor.ProfileID,
		SmartCardID:  actor.SmartCardID,
		DelegationID: actor.DelegationID,
		Operation:    audit.OperationModify,
	}
	if err := s.audits.CreateWithTx(ctx, tx, entry); err != nil {
		wf.abort()
		return nil, xerrors.Wrap(err, "failed to write audit entry")
	}

	if err := tx.Commit(ctx); err != nil {
		wf.abort()
		return nil, xerrors.Wrapf(xerrors.ErrTransaction, err)
	}
	if err := wf.to(StateVehicleCommitted); err != nil {
		return nil, err
	}

	created := append(ids.Created, cat.Created...)
	s.invalidateCaches(ctx, created)

	result := &vehicle.ModifyVehicleResult{
		VehicleID:      vehicleID,
		VehicleUpdated: true,
		CreatedEntries: created,
	}

	// Insurance upsert: separate database, separate fate. A failure here
	// cannot undo the committed vehicle update.
	if err := wf.to(StateInsuranceUpserting); err != nil {
		return nil, err
	}
	policy := &insurance.Policy{
		ConcessionID:   req.Insurance.ConcessionID,
		Insurer:        req.Insurance.Insurer,
		PolicyNumber:   req.Insurance.PolicyNumber,
		IssueDate:      req.Insurance.IssueDate,
		ExpirationDate: req.Insurance.ExpirationDate,
		PaymentFolio:   req.Insurance.PaymentFolio,
		Remarks:        req.Insurance.Remarks,
	}
	if err := s.insurances.Upsert(ctx, policy); err != nil {
		s.logger.Error("insurance upsert failed after vehicle commit",
			zap.Int64("vehicle_id", vehicleID),
			zap.Int64("concession_id", policy.ConcessionID),
			zap.Error(err),
		)
		return result, xerrors.Wrapf(xerrors.ErrInsurancePartial, err)
	}
	result.InsuranceUpdated = true

	if err := wf.to(StateDone); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle modified",
		zap.Int64("vehicle_id", vehicleID),
		zap.String("serial", attrs.Serial),
		zap.Int64("concession_id", policy.ConcessionID),
		zap.Int64("user_id", actor.UserID),
		zap.Strings("created_catalog_entries", created),
	)
	return result, nil
}

func validate(req *vehicle.ModifyVehicleRequest) error {
	attrs := &req.Attributes
	switch {
	case strings.TrimSpace(attrs.Serial) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "numero_serie is required")
	case strings.TrimSpace(attrs.Class) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "clase is required")
	case strings.TrimSpace(attrs.Type) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "tipo is required")
	case strings.TrimSpace(attrs.Make) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "marca is required")
	case req.Insurance.ConcessionID <= 0:
		return xerrors.Wrap(xerrors.ErrInvalidInput, "id_concesion is required")
	case strings.TrimSpace(req.Insurance.Insurer) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "aseguradora is required")
	case strings.TrimSpace(req.Insurance.PolicyNumber) == "":
		return xerrors.Wrap(xerrors.ErrInvalidInput, "numero_poliza is required")
	}
	return nil
}

func buildRecord(attrs *vehicle.VehicleAttributes, ids *resolvedIDs, cat *resolvedCategory) *vehicle.Record {
	rec := &vehicle.Record{
		Year:          attrs.Year,
		Passengers:    attrs.Passengers,
		Cylinders:     attrs.Cylinders,
		ClassID:       ids.ClassID,
		TypeID:        ids.TypeID,
		UseID:         ids.UseID,
		ColorID:       ids.ColorID,
		FuelID:        ids.FuelID,
		OriginID:      ids.OriginID,
		MakeID:        ids.MakeID,
		SubmodelID:    ids.SubmodelID,
		PlateTypeID:   ids.PlateTypeID,
		CategoryID:    cat.CategoryID,
		VersionID:     cat.VersionID,
		ServiceID:     attrs.ServiceID,
		EngineNumber:  attrs.EngineNumber,
		Doors:         attrs.Doors,
		PreviousPlate: attrs.PreviousPlate,
		AssignedPlate: attrs.AssignedPlate,
		WeightClass:   attrs.WeightClass,
		Capacity:      attrs.Capacity,
		VehicularKey:  attrs.VehicularKey,
	}
	// The category resolver's make/submodel win when present.
	if cat.MakeID != 0 {
		rec.MakeID = cat.MakeID
	}
	if cat.SubmodelID != 0 {
		rec.SubmodelID = cat.SubmodelID
	}
	return rec
}

func (s *Service) invalidateCaches(ctx context.Context, created []string) {
	if s.cache == nil {
		return
	}
	seen := map[catalog.Kind]bool{}
	for _, c := range created {
		kind, _, ok := strings.Cut(c, ":")
		if !ok || seen[catalog.Kind(kind)] {
			continue
		}
		seen[catalog.Kind(kind)] = true
		if err := s.cache.Invalidate(ctx, catalog.Kind(kind)); err != nil {
			s.logger.Warn("catalog cache invalidation failed",
				zap.String("catalog", kind),
				zap.Error(err),
			)
		}
	}
}
