package modification

import (
	"context"

	"transporte-service/internal/domain/catalog"
	"transporte-service/internal/domain/vehicle"
	xerrors "transporte-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

// resolvedCategory is the combined result of the vehicular-key resolution:
// the category plus normalized make/submodel/version ids. These make and
// submodel ids override the plain resolver's, since this path accounts for
// version-specific mappings.
type resolvedCategory struct {
	CategoryID int64
	MakeID     int64
	SubmodelID int64
	VersionID  int64

	Created []string
}

type categoryResolver struct {
	catalogs   catalog.Repository
	categories catalog.CategoryRepository
}

func (cr *categoryResolver) resolve(ctx context.Context, tx pgx.Tx, attrs *vehicle.VehicleAttributes) (*resolvedCategory, error) {
	out := &resolvedCategory{CategoryID: catalog.CategoryUnclassified}

	plain := []struct {
		kind  catalog.Kind
		label string
		dst   *int64
	}{
		{catalog.KindMake, attrs.Make, &out.MakeID},
		{catalog.KindSubmodel, attrs.Submodel, &out.SubmodelID},
		{catalog.KindVersion, attrs.Version, &out.VersionID},
	}
	for _, p := range plain {
		if p.label == "" {
			continue
		}
		id, created, err := cr.catalogs.ResolveWithTx(ctx, tx, p.kind, p.label)
		if err != nil {
			return nil, err
		}
		*p.dst = id
		if created {
			out.Created = append(out.Created, string(p.kind)+":"+p.label)
		}
	}

	if attrs.VehicularKey == "" {
		return out, nil
	}

	cat, err := cr.categories.FindByVehicularKey(ctx, tx, attrs.VehicularKey)
	if xerrors.Is(err, xerrors.ErrNotFound) {
		// No mapping for this key: the vehicle stays unclassified. This is a
		// soft miss, not a failure.
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	out.CategoryID = cat.ID
	return out, nil
}
