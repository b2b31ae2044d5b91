package services

import (
	"context"
	"testing"
	"time"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/db_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/request_models"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/memcache"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type fakeHotelRepo struct {
	hotels map[string]*db_models.Hotel
}

func (f *fakeHotelRepo) Insert(_ context.Context, hotel *db_models.Hotel) error {
	if hotel.ID == uuid.Nil {
		hotel.ID = uuid.New()
	}
	f.hotels[hotel.ID.String()] = hotel
	return nil
}

func (f *fakeHotelRepo) FindById(_ context.Context, id string) (*db_models.Hotel, error) {
	return f.hotels[id], nil
}

func (f *fakeHotelRepo) List(_ context.Context, _, _ int) ([]db_models.Hotel, error) {
	out := make([]db_models.Hotel, 0, len(f.hotels))
	for _, hotel := range f.hotels {
		out = append(out, *hotel)
	}
	return out, nil
}

type fakeMemberRepo struct {
	members map[string]*db_models.BookingMember
}

func (f *fakeMemberRepo) Insert(_ context.Context, member *db_models.BookingMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	f.members[member.ID.String()] = member
	return nil
}

func (f *fakeMemberRepo) FindById(_ context.Context, id string) (*db_models.BookingMember, error) {
	return f.members[id], nil
}

func (f *fakeMemberRepo) FindByBookingAndEmail(_ context.Context, bookingId, email string) (*db_models.BookingMember, error) {
	for _, member := range f.members {
		if member.BookingID.String() == bookingId && member.Email == email {
			return member, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) ListByBooking(_ context.Context, bookingId string) ([]db_models.BookingMember, error) {
	var out []db_models.BookingMember
	for _, member := range f.members {
		if member.BookingID.String() == bookingId {
			out = append(out, *member)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) CountJoined(_ context.Context, bookingId string) (int64, error) {
	var count int64
	for _, member := range f.members {
		if member.BookingID.String() == bookingId && member.Status == db_models.MemberStatusJoined {
			count++
		}
	}
	return count, nil
}

func (f *fakeMemberRepo) UpdateStatus(_ context.Context, id string, status db_models.MemberStatus) error {
	if member, ok := f.members[id]; ok {
		member.Status = status
	}
	return nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id string) error {
	delete(f.members, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*db_models.Booking
	hotels   *fakeHotelRepo
	members  *fakeMemberRepo
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *db_models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings[booking.ID.String()] = booking
	return nil
}

func (f *fakeBookingRepo) FindById(ctx context.Context, id string) (*db_models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}

	// Emulate the repository preloads.
	loaded := *booking
	if hotel := f.hotels.hotels[booking.HotelID.String()]; hotel != nil {
		loaded.Hotel = *hotel
	}
	members, _ := f.members.ListByBooking(ctx, id)
	loaded.Members = members
	return &loaded, nil
}

func (f *fakeBookingRepo) ListByOrganizer(_ context.Context, organizerId string, _, _ int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, booking := range f.bookings {
		if booking.OrganizerID.String() == organizerId {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBreakdown(_ context.Context, bookingId string, breakdown datatypes.JSON) error {
	if booking, ok := f.bookings[bookingId]; ok {
		booking.Breakdown = breakdown
	}
	return nil
}

func newBookingFixture() (BookingServiceInterface, MemberServiceInterface, *fakeHotelRepo, *fakeMemberRepo) {
	hotelRepo := &fakeHotelRepo{hotels: make(map[string]*db_models.Hotel)}
	memberRepo := &fakeMemberRepo{members: make(map[string]*db_models.BookingMember)}
	bookingRepo := &fakeBookingRepo{
		bookings: make(map[string]*db_models.Booking),
		hotels:   hotelRepo,
		members:  memberRepo,
	}

	bookings := NewBookingService(bookingRepo, hotelRepo, memberRepo,
		NewPricingService(), NewMemberAllocator(), NewSuitabilityService())
	members := NewMemberService(memberRepo, bookingRepo, memcache.NewInviteTokens(), bookings)

	return bookings, members, hotelRepo, memberRepo
}

func seedHotel(hotelRepo *fakeHotelRepo) *db_models.Hotel {
	hotel := &db_models.Hotel{
		Name:        "Harbour Grand",
		City:        "Mumbai",
		StarRating:  4,
		NightlyRate: 5000,
		RoomsTotal:  120,
		Amenities:   []string{"WiFi", "Conference Room", "Projector", "Catering", "Parking"},
	}
	_ = hotelRepo.Insert(context.Background(), hotel)
	return hotel
}

func TestCreateBookingStoresBreakdownDocument(t *testing.T) {
	bookings, _, hotelRepo, _ := newBookingFixture()
	hotel := seedHotel(hotelRepo)
	ctx := context.Background()

	checkIn := time.Now().Add(40 * 24 * time.Hour)
	organizer := uuid.New().String()

	created, err := bookings.CreateBooking(ctx, organizer, request_models.CreateBookingRequest{
		HotelID:   hotel.ID.String(),
		EventType: "mice",
		RoomCount: 2,
		CheckIn:   checkIn.Format(time.RFC3339),
		CheckOut:  checkIn.Add(48 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	// One member, booked well ahead: early-bird only.
	if created.Breakdown.GroupDiscount != 0 {
		t.Errorf("GroupDiscount = %v, want 0 for a single member", created.Breakdown.GroupDiscount)
	}
	if created.Breakdown.EarlyBirdDiscount != 1638 {
		t.Errorf("EarlyBirdDiscount = %v, want 1638", created.Breakdown.EarlyBirdDiscount)
	}
	if created.Breakdown.TotalForAllRooms != 21762 {
		t.Errorf("TotalForAllRooms = %v, want 21762", created.Breakdown.TotalForAllRooms)
	}
	if created.Suitability == nil {
		t.Fatal("no suitability score attached to the new booking")
	}
	if created.Suitability.Category != CategoryMICE {
		t.Errorf("suitability category = %q, want %q", created.Suitability.Category, CategoryMICE)
	}

	// The row holds the breakdown verbatim.
	fetched, err := bookings.GetBookingById(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBookingById returned error: %v", err)
	}
	if fetched.Breakdown != created.Breakdown {
		t.Errorf("stored breakdown differs from the engine result:\n%+v\n%+v",
			fetched.Breakdown, created.Breakdown)
	}
	if fetched.MemberCount != 1 {
		t.Errorf("MemberCount = %d, want 1 (organizer)", fetched.MemberCount)
	}
}

func TestMembershipChangeRepricesBooking(t *testing.T) {
	bookings, members, hotelRepo, memberRepo := newBookingFixture()
	hotel := seedHotel(hotelRepo)
	ctx := context.Background()

	checkIn := time.Now().Add(40 * 24 * time.Hour)
	created, err := bookings.CreateBooking(ctx, uuid.New().String(), request_models.CreateBookingRequest{
		HotelID:   hotel.ID.String(),
		EventType: "mice",
		RoomCount: 2,
		CheckIn:   checkIn.Format(time.RFC3339),
		CheckOut:  checkIn.Add(48 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Invite and join four more members; the group discount unlocks at five.
	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"}
	var breakdown *response_models.PricingBreakdown
	for _, email := range emails {
		invite, err := members.InviteMember(ctx, created.ID, email)
		if err != nil {
			t.Fatalf("InviteMember(%s) error: %v", email, err)
		}
		breakdown, err = members.AcceptInvite(ctx, invite.Token, uuid.New().String())
		if err != nil {
			t.Fatalf("AcceptInvite(%s) error: %v", email, err)
		}
	}

	if breakdown.GroupDiscount != 2340 {
		t.Errorf("GroupDiscount = %v, want 2340 with five members", breakdown.GroupDiscount)
	}
	if breakdown.TotalForAllRooms != 19422 {
		t.Errorf("TotalForAllRooms = %v, want 19422", breakdown.TotalForAllRooms)
	}
	if breakdown.PricePerMember != 3884 {
		t.Errorf("PricePerMember = %v, want 3884", breakdown.PricePerMember)
	}

	count, _ := memberRepo.CountJoined(ctx, created.ID)
	if count != 5 {
		t.Fatalf("joined members = %d, want 5", count)
	}

	// The stored document reflects the repricing.
	fetched, err := bookings.GetBookingById(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fetched.Breakdown.TotalForAllRooms != 19422 {
		t.Errorf("stored TotalForAllRooms = %v, want 19422", fetched.Breakdown.TotalForAllRooms)
	}

	// Equal split across the five joined members sums exactly.
	split, err := bookings.SplitForBooking(ctx, created.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(split.Shares) != 5 {
		t.Fatalf("split has %d shares, want 5", len(split.Shares))
	}
	sum := 0.0
	for _, share := range split.Shares {
		sum += share.Amount
	}
	if sum != 19422 {
		t.Errorf("split shares sum to %v, want 19422", sum)
	}
}

func TestAcceptInviteTokenIsSingleUse(t *testing.T) {
	bookings, members, hotelRepo, _ := newBookingFixture()
	hotel := seedHotel(hotelRepo)
	ctx := context.Background()

	checkIn := time.Now().Add(10 * 24 * time.Hour)
	created, err := bookings.CreateBooking(ctx, uuid.New().String(), request_models.CreateBookingRequest{
		HotelID:   hotel.ID.String(),
		EventType: "wedding",
		RoomCount: 1,
		CheckIn:   checkIn.Format(time.RFC3339),
		CheckOut:  checkIn.Add(24 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatal(err)
	}

	invite, err := members.InviteMember(ctx, created.ID, "guest@x.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := members.AcceptInvite(ctx, invite.Token, uuid.New().String()); err != nil {
		t.Fatalf("first AcceptInvite error: %v", err)
	}
	if _, err := members.AcceptInvite(ctx, invite.Token, uuid.New().String()); err == nil {
		t.Error("second AcceptInvite succeeded, token should be single-use")
	}
}

func TestCustomSplitMismatchReturnsWarning(t *testing.T) {
	bookings, _, hotelRepo, _ := newBookingFixture()
	hotel := seedHotel(hotelRepo)
	ctx := context.Background()

	checkIn := time.Now().Add(5 * 24 * time.Hour)
	created, err := bookings.CreateBooking(ctx, uuid.New().String(), request_models.CreateBookingRequest{
		HotelID:   hotel.ID.String(),
		EventType: "general",
		RoomCount: 1,
		CheckIn:   checkIn.Format(time.RFC3339),
		CheckOut:  checkIn.Add(24 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatal(err)
	}

	split, err := bookings.SplitForBooking(ctx, created.ID, []response_models.MemberShare{
		{MemberKey: "m1", Amount: 1},
		{MemberKey: "m2", Amount: 2},
	})
	if err != nil {
		t.Fatalf("mismatched custom split must not error, got %v", err)
	}
	if !split.FallbackApplied {
		t.Error("FallbackApplied not set")
	}
	if split.Warning == "" {
		t.Error("fallback split carries no warning")
	}
	if split.TotalAmount != created.Breakdown.TotalForAllRooms {
		t.Errorf("split total = %v, want %v", split.TotalAmount, created.Breakdown.TotalForAllRooms)
	}
}
