package member_fx

import (
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/services"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideInviteTokens, provideMemberService)

func provideInviteTokens() memcache.InviteTokenStore {
	return memcache.NewInviteTokens()
}

func provideMemberService(
	memberRepo repositories.MemberRepository,
	bookingRepo repositories.BookingRepository,
	invites memcache.InviteTokenStore,
	bookings services.BookingServiceInterface,
) services.MemberServiceInterface {

	return services.NewMemberService(memberRepo, bookingRepo, invites, bookings)
}
