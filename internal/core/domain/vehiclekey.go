package domain

import (
	"fmt"
)

type VehicleKeyKind string

const (
	KeyByListing VehicleKeyKind = "LISTING"
	KeyByVehicle VehicleKeyKind = "VEHICLE"
	KeyByOrder   VehicleKeyKind = "ORDER"
)

// VehicleKey identifies the vehicle an order refers to for
// reconciliation grouping.
type VehicleKey struct {
	Kind  VehicleKeyKind
	Value string
}

// ResolveVehicleKey picks the grouping key by fixed priority: stable
// listing id first, then a make/model/year composite, then the order id
// for records with no vehicle reference at all.
func ResolveVehicleKey(o *Order) VehicleKey {
	if o.ListingID != "" {
		return VehicleKey{Kind: KeyByListing, Value: o.ListingID}
	}
	if o.VehicleMake != "" || o.VehicleModel != "" || o.VehicleYear != 0 {
		return VehicleKey{
			Kind:  KeyByVehicle,
			Value: fmt.Sprintf("%s/%s/%d", o.VehicleMake, o.VehicleModel, o.VehicleYear),
		}
	}
	return VehicleKey{Kind: KeyByOrder, Value: o.ID.String()}
}
