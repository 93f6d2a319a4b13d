package road

import "github.com/golangdaddy/truckin/pkg/models"

// ServiceType is what a roadside stop offers
type ServiceType int

const (
	ServiceTypeFuel ServiceType = iota
	ServiceTypeFood
	ServiceTypeRest
	serviceTypeCount
)

// ServiceTypes lists every service in spawn-check order.
var ServiceTypes = [...]ServiceType{ServiceTypeFuel, ServiceTypeFood, ServiceTypeRest}

func (t ServiceType) String() string {
	switch t {
	case ServiceTypeFuel:
		return "fuel"
	case ServiceTypeFood:
		return "food"
	case ServiceTypeRest:
		return "rest"
	}
	return "unknown"
}

// Replenishes returns the resource a stop of this type refills.
func (t ServiceType) Replenishes() models.Resource {
	switch t {
	case ServiceTypeFood:
		return models.Hunger
	case ServiceTypeRest:
		return models.Sleep
	}
	return models.Fuel
}
