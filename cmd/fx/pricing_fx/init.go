package pricing_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(providePricingService, provideMemberAllocator)

func providePricingService() services.PricingServiceInterface {
	return services.NewPricingService()
}

func provideMemberAllocator() services.MemberAllocatorInterface {
	return services.NewMemberAllocator()
}
