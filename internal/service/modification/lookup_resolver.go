package modification

import (
	"context"
	"fmt"

	"transporte-service/internal/domain/catalog"
	"transporte-service/internal/domain/vehicle"

	"github.com/jackc/pgx/v5"
)

// resolvedIDs holds the catalog ids produced by one resolution pass, plus the
// labels that had to be created along the way (reported back to the caller).
type resolvedIDs struct {
	ClassID     int64
	TypeID      int64
	UseID       int64
	ColorID     int64
	FuelID      int64
	OriginID    int64
	MakeID      int64
	SubmodelID  int64
	PlateTypeID int64

	Created []string
}

// lookupResolver turns free-text vehicle attributes into catalog ids with
// find-or-create semantics. All writes go through the caller's transaction so
// a failed modification leaves no orphaned catalog rows behind.
type lookupResolver struct {
	catalogs catalog.Repository
}

func (lr *lookupResolver) resolve(ctx context.Context, tx pgx.Tx, attrs *vehicle.VehicleAttributes) (*resolvedIDs, error) {
	ids := &resolvedIDs{}

	// Clase first: tipo rows are scoped by the clase id.
	classID, created, err := lr.catalogs.ResolveWithTx(ctx, tx, catalog.KindClass, attrs.Class)
	if err != nil {
		return nil, err
	}
	ids.ClassID = classID
	ids.note(created, catalog.KindClass, attrs.Class)

	typeID, created, err := lr.catalogs.ResolveTypeWithTx(ctx, tx, classID, attrs.Type)
	if err != nil {
		return nil, err
	}
	ids.TypeID = typeID
	ids.note(created, catalog.KindType, attrs.Type)

	plain := []struct {
		kind  catalog.Kind
		label string
		dst   *int64
	}{
		{catalog.KindUse, attrs.Use, &ids.UseID},
		{catalog.KindColor, attrs.Color, &ids.ColorID},
		{catalog.KindFuel, attrs.Fuel, &ids.FuelID},
		{catalog.KindOrigin, attrs.Origin, &ids.OriginID},
		{catalog.KindMake, attrs.Make, &ids.MakeID},
		{catalog.KindSubmodel, attrs.Submodel, &ids.SubmodelID},
		{catalog.KindPlateType, attrs.PlateType, &ids.PlateTypeID},
	}
	for _, p := range plain {
		if p.label == "" {
			continue
		}
		id, created, err := lr.catalogs.ResolveWithTx(ctx, tx, p.kind, p.label)
		if err != nil {
			return nil, err
		}
		*p.dst = id
		ids.note(created, p.kind, p.label)
	}

	return ids, nil
}

func (ids *resolvedIDs) note(created bool, kind catalog.Kind, label string) {
	if created {
		ids.Created = append(ids.Created, fmt.Sprintf("%s:%s", kind, label))
	}
}
