package booking_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideBookingRepo, provideMemberRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	hotelRepo repositories.HotelRepository,
	memberRepo repositories.MemberRepository,
	pricing services.PricingServiceInterface,
	allocator services.MemberAllocatorInterface,
	suitability services.SuitabilityServiceInterface,
) services.BookingServiceInterface {

	return services.NewBookingService(bookingRepo, hotelRepo, memberRepo, pricing, allocator, suitability)
}
