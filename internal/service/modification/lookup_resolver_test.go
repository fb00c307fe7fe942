package modification

import (
	"context"
	"testing"

	"transporte-service/internal/domain/vehicle"
)

func TestLookupResolverIsIdempotent(t *testing.T) {
	catalogs := newFakeCatalogRepo()
	lr := &lookupResolver{catalogs: catalogs}
	attrs := &vehicle.VehicleAttributes{
		Class: "Automóvil",
		Type:  "Sedán",
		Color: "Turquesa",
		Make:  "Nissan",
	}

	first, err := lr.resolve(context.Background(), &fakeTx{}, attrs)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	createsAfterFirst := catalogs.creates

	second, err := lr.resolve(context.Background(), &fakeTx{}, attrs)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first.ColorID != second.ColorID || first.TypeID != second.TypeID || first.MakeID != second.MakeID {
		t.Fatalf("same labels must resolve to same ids: %+v vs %+v", first, second)
	}
	if catalogs.creates != createsAfterFirst {
		t.Fatalf("second resolve created %d extra rows", catalogs.creates-createsAfterFirst)
	}
	if len(second.Created) != 0 {
		t.Fatalf("second resolve reported creations: %v", second.Created)
	}
}

func TestLookupResolverScopesTypeByClass(t *testing.T) {
	catalogs := newFakeCatalogRepo()
	lr := &lookupResolver{catalogs: catalogs}

	car, err := lr.resolve(context.Background(), &fakeTx{}, &vehicle.VehicleAttributes{
		Class: "Automóvil", Type: "Sedan",
	})
	if err != nil {
		t.Fatalf("resolve under Automóvil: %v", err)
	}
	moto, err := lr.resolve(context.Background(), &fakeTx{}, &vehicle.VehicleAttributes{
		Class: "Motocicleta", Type: "Sedan",
	})
	if err != nil {
		t.Fatalf("resolve under Motocicleta: %v", err)
	}

	if car.TypeID == moto.TypeID {
		t.Fatalf("identical type label under different classes must yield distinct ids")
	}
}

func TestLookupResolverSkipsEmptyOptionalLabels(t *testing.T) {
	catalogs := newFakeCatalogRepo()
	lr := &lookupResolver{catalogs: catalogs}

	ids, err := lr.resolve(context.Background(), &fakeTx{}, &vehicle.VehicleAttributes{
		Class: "Automóvil", Type: "Sedán", Make: "Nissan",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ids.ColorID != 0 || ids.UseID != 0 || ids.PlateTypeID != 0 {
		t.Fatalf("empty labels must resolve to 0, got %+v", ids)
	}
}
