package suitability_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideSuitabilityService)

func provideSuitabilityService() services.SuitabilityServiceInterface {
	return services.NewSuitabilityService()
}
