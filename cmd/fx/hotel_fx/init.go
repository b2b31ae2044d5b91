package hotel_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideHotelRepo, provideHotelService)

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(
	hotelRepo repositories.HotelRepository,
	suitability services.SuitabilityServiceInterface,
) services.HotelServiceInterface {

	return services.NewHotelService(hotelRepo, suitability)
}
