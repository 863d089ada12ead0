package agent

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// VehicleType classifies the vehicle a delivery agent operates.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBike is a bicycle or motorbike.
	VehicleBike

	// VehicleCar is a passenger car.
	VehicleCar

	// VehicleVan is a delivery van.
	VehicleVan

	// VehicleTruck is a truck for bulk deliveries.
	VehicleTruck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "unknown",
		VehicleBike:    "bike",
		VehicleCar:     "car",
		VehicleVan:     "van",
		VehicleTruck:   "truck",
	}
}

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleBike:  "bike",
		VehicleCar:   "car",
		VehicleVan:   "van",
		VehicleTruck: "truck",
	}
}

// VehicleTypeFromString parses a vehicle type from its wire representation
// ("bike", "car", "van", "truck").
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire representation of the vehicle type.
// Implements the fmt.Stringer interface; safe on any value.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
