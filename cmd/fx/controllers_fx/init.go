package controllers_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewHotelController,
	controllers.NewPricingController,
	controllers.NewBookingController,
	controllers.NewMemberController,
)
