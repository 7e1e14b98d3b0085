package workorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// ServiceType classifies the kind of work requested.
type ServiceType int

const (
	// ServiceTypeMaintenance is regular scheduled maintenance.
	ServiceTypeMaintenance ServiceType = iota
	// ServiceTypeRepair fixes an existing problem.
	ServiceTypeRepair
	// ServiceTypeDiagnostic identifies issues without committing to a repair.
	ServiceTypeDiagnostic
	// ServiceTypeInspection is a pre-purchase or regulatory inspection.
	ServiceTypeInspection
	// ServiceTypeWarranty is repair work covered by warranty.
	ServiceTypeWarranty
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeMaintenance: "Maintenance",
		ServiceTypeRepair:      "Repair",
		ServiceTypeDiagnostic:  "Diagnostic",
		ServiceTypeInspection:  "Inspection",
		ServiceTypeWarranty:    "Warranty",
	}
}

// ServiceTypeFromString parses a service type name as produced by String.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getServiceTypeStrings() {
		if str == s {
			return serviceType, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// String returns the service type name.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the ServiceType is one of the defined kinds.
func (t ServiceType) Validate() error {
	if _, ok := getServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// ServicePriority ranks how urgently a work order should be handled.
type ServicePriority int

const (
	// ServicePriorityNormal is the default priority.
	ServicePriorityNormal ServicePriority = iota
	// ServicePriorityHigh jumps the regular queue.
	ServicePriorityHigh
	// ServicePriorityEmergency is handled before everything else.
	ServicePriorityEmergency
)

func getServicePriorityStrings() map[ServicePriority]string {
	return map[ServicePriority]string{
		ServicePriorityNormal:    "Normal",
		ServicePriorityHigh:      "High",
		ServicePriorityEmergency: "Emergency",
	}
}

// ServicePriorityFromString parses a priority name as produced by String.
func ServicePriorityFromString(s string) (ServicePriority, error) {
	for priority, str := range getServicePriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid service priority", s))
}

// String returns the priority name.
func (p ServicePriority) String() string {
	if str, ok := getServicePriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the ServicePriority is one of the defined levels.
func (p ServicePriority) Validate() error {
	if _, ok := getServicePriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid service priority", p))
	}
	return nil
}
