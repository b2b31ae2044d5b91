package services

import (
	"context"
	"log"
	"time"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/repositories"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/memcache"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
	"github.com/google/uuid"
)

const inviteTokenTTL = 72 * time.Hour

type MemberServiceInterface interface {
	InviteMember(ctx context.Context, bookingId, email string) (*response_models.InviteResponse, error)
	AcceptInvite(ctx context.Context, token, accountId string) (*response_models.PricingBreakdown, error)
	ListMembers(ctx context.Context, bookingId string) ([]response_models.MemberResponse, error)
	RemoveMember(ctx context.Context, bookingId, memberId string) (*response_models.PricingBreakdown, error)
}

type MemberService struct {
	memberRepo  repositories.MemberRepository
	bookingRepo repositories.BookingRepository
	invites     memcache.InviteTokenStore
	bookings    BookingServiceInterface
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	bookingRepo repositories.BookingRepository,
	invites memcache.InviteTokenStore,
	bookings BookingServiceInterface,
) MemberServiceInterface {
	return &MemberService{
		memberRepo:  memberRepo,
		bookingRepo: bookingRepo,
		invites:     invites,
		bookings:    bookings,
	}
}

func (m *MemberService) InviteMember(ctx context.Context, bookingId, email string) (*response_models.InviteResponse, error) {
	booking, err := m.bookingRepo.FindById(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	existing, err := m.memberRepo.FindByBookingAndEmail(ctx, bookingId, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		member := &db_models.BookingMember{
			BookingID: booking.ID,
			Email:     email,
			Status:    db_models.MemberStatusInvited,
		}
		if err := m.memberRepo.Insert(ctx, member); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	token, err := utils.GenerateSecureToken(24)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	m.invites.Set(token, memcache.Invite{BookingID: bookingId, Email: email}, inviteTokenTTL)

	// Delivery is the notification layer's job.
	log.Printf("invite for booking %s issued to %s", bookingId, email)

	return &response_models.InviteResponse{
		Token:     token,
		Email:     email,
		ExpiresIn: int64(inviteTokenTTL.Seconds()),
	}, nil
}

// AcceptInvite consumes a single-use token, marks the member joined and
// reprices the booking for the new member count.
func (m *MemberService) AcceptInvite(ctx context.Context, token, accountId string) (*response_models.PricingBreakdown, error) {
	invite, ok := m.invites.Consume(token)
	if !ok {
		return nil, utils.ErrInviteInvalid
	}

	member, err := m.memberRepo.FindByBookingAndEmail(ctx, invite.BookingID, invite.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	if accountUUID, err := uuid.Parse(accountId); err == nil {
		member.AccountID = accountUUID
	}
	if err := m.memberRepo.UpdateStatus(ctx, member.ID.String(), db_models.MemberStatusJoined); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return m.bookings.RepriceBooking(ctx, invite.BookingID)
}

func (m *MemberService) ListMembers(ctx context.Context, bookingId string) ([]response_models.MemberResponse, error) {
	members, err := m.memberRepo.ListByBooking(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, response_models.MemberResponse{
			ID:     member.ID.String(),
			Email:  member.Email,
			Status: string(member.Status),
		})
	}
	return out, nil
}

func (m *MemberService) RemoveMember(ctx context.Context, bookingId, memberId string) (*response_models.PricingBreakdown, error) {
	member, err := m.memberRepo.FindById(ctx, memberId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil || member.BookingID.String() != bookingId {
		return nil, utils.ErrMemberNotFound
	}

	if err := m.memberRepo.Delete(ctx, memberId); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return m.bookings.RepriceBooking(ctx, bookingId)
}
