package booking

import (
	"context"
	"fmt"

	"salonora/models"
)

// memDraftStore is an in-memory DraftStore for tests.
type memDraftStore struct {
	drafts map[string]*models.BookingDraft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]*models.BookingDraft)}
}

func (s *memDraftStore) Get(_ context.Context, id string) (*models.BookingDraft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (s *memDraftStore) Set(_ context.Context, draft *models.BookingDraft) error {
	cp := *draft
	s.drafts[draft.ID] = &cp
	return nil
}

func (s *memDraftStore) Delete(_ context.Context, id string) error {
	delete(s.drafts, id)
	return nil
}

// fakeCatalog serves services from a fixed map.
type fakeCatalog struct {
	services map[string]models.SalonService
}

func (f *fakeCatalog) GetServiceByID(id string) (*models.SalonService, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return &svc, nil
}

func (f *fakeCatalog) GetServicesBySalon(string) ([]models.SalonService, error) { return nil, nil }

func (f *fakeCatalog) GetServicesByIDs(ids []string) ([]models.SalonService, error) {
	out := make([]models.SalonService, 0, len(ids))
	for _, id := range ids {
		svc, ok := f.services[id]
		if !ok {
			return nil, fmt.Errorf("service %s not found", id)
		}
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeCatalog) CreateService(*models.SalonService) error          { return nil }
func (f *fakeCatalog) UpdateService(*models.SalonService) error          { return nil }
func (f *fakeCatalog) DeleteService(string) error                        { return nil }
func (f *fakeCatalog) GetProductsBySalon(string) ([]models.Product, error) { return nil, nil }
func (f *fakeCatalog) CreateProduct(*models.Product) error               { return nil }
func (f *fakeCatalog) UpdateProduct(*models.Product) error               { return nil }
func (f *fakeCatalog) DeleteProduct(string) error                        { return nil }

// fakeBookings records created rows and serves existing bookings per day.
// failOn makes the nth Create call fail (1-based, 0 disables).
type fakeBookings struct {
	existing []models.Booking
	created  []models.Booking
	failOn   int
}

func (f *fakeBookings) Create(b *models.Booking) error {
	if f.failOn > 0 && len(f.created)+1 == f.failOn {
		return fmt.Errorf("simulated store failure")
	}
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeBookings) GetByID(id string) (*models.Booking, error) {
	return nil, fmt.Errorf("booking %s not found", id)
}

func (f *fakeBookings) GetBySalonAndDate(salonID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range append(f.existing, f.created...) {
		if b.SalonID == salonID && b.Date == date && b.Status != models.BookingStatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) GetByGroup(groupID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.GroupID == groupID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) GetByUser(string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookings) GetBySalonBetween(string, string, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookings) UpdateStatus(string, string) error { return nil }

// fakeStaff serves a fixed roster.
type fakeStaff struct {
	staff []models.Staff
}

func (f *fakeStaff) GetByID(id string) (*models.Staff, error) {
	for _, st := range f.staff {
		if st.ID == id {
			cp := st
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}

func (f *fakeStaff) GetBySalon(salonID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, st := range f.staff {
		if st.SalonID == salonID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStaff) Create(*models.Staff) error { return nil }
func (f *fakeStaff) Update(*models.Staff) error { return nil }
func (f *fakeStaff) Delete(string) error        { return nil }

func (f *fakeStaff) OpenAttendance(string, string) (*models.Attendance, error) { return nil, nil }
func (f *fakeStaff) CreateAttendance(*models.Attendance) error                 { return nil }
func (f *fakeStaff) CloseAttendance(string) error                              { return nil }
func (f *fakeStaff) AttendanceBySalonAndDate(string, string) ([]models.Attendance, error) {
	return nil, nil
}

// fakeCoupons returns a fixed state for one accepted code and counts
// validation calls.
type fakeCoupons struct {
	accepted      string
	state         *models.CouponState
	validateCalls int
}

func (f *fakeCoupons) Validate(code, _ string, _ float64) (*models.CouponState, error) {
	f.validateCalls++
	if code == f.accepted && f.state != nil {
		cp := *f.state
		return &cp, nil
	}
	return nil, fmt.Errorf("invalid or expired coupon code")
}

func (f *fakeCoupons) GetBySalon(string) ([]models.Coupon, error)        { return nil, nil }
func (f *fakeCoupons) Create(c *models.Coupon) (*models.Coupon, error)   { return c, nil }
func (f *fakeCoupons) Update(*models.Coupon) error                       { return nil }
func (f *fakeCoupons) Delete(string) error                               { return nil }

// fakeLoyalty holds one balance and records redemptions and accruals.
type fakeLoyalty struct {
	balance    int
	program    *models.LoyaltyProgram
	balanceErr error

	redeemed []int
	accrued  []float64
}

func (f *fakeLoyalty) CombinedBalance(string, string) (int, error) {
	if f.balanceErr != nil {
		return 0, f.balanceErr
	}
	return f.balance, nil
}

func (f *fakeLoyalty) Program(string) (*models.LoyaltyProgram, error) { return f.program, nil }
func (f *fakeLoyalty) SetProgram(*models.LoyaltyProgram) error        { return nil }

func (f *fakeLoyalty) Redeem(_, _, _ string, points int) error {
	f.redeemed = append(f.redeemed, points)
	return nil
}

func (f *fakeLoyalty) Accrue(_, _, _ string, pricePaid float64) error {
	f.accrued = append(f.accrued, pricePaid)
	return nil
}

// newTestService wires a booking service against in-memory fakes.
func newTestService() (*DefaultBookingService, *memDraftStore, *fakeCatalog, *fakeBookings, *fakeCoupons, *fakeLoyalty) {
	drafts := newMemDraftStore()
	cat := &fakeCatalog{services: map[string]models.SalonService{
		"svc-cut":   {ID: "svc-cut", SalonID: "salon-1", Name: "Haircut", Price: 50, Active: true},
		"svc-color": {ID: "svc-color", SalonID: "salon-1", Name: "Coloring", Price: 60, Active: true},
		"svc-spa":   {ID: "svc-spa", SalonID: "salon-1", Name: "Spa", Price: 40, Active: true},
		"svc-other": {ID: "svc-other", SalonID: "salon-2", Name: "Elsewhere", Price: 10, Active: true},
	}}
	bookings := &fakeBookings{}
	staff := &fakeStaff{staff: []models.Staff{
		{ID: "staff-1", SalonID: "salon-1", DisplayName: "Ana", Active: true},
		{ID: "staff-2", SalonID: "salon-1", DisplayName: "Bea", Active: true},
	}}
	coupons := &fakeCoupons{}
	loyalty := &fakeLoyalty{}

	svc := &DefaultBookingService{
		Drafts:   drafts,
		Catalog:  cat,
		Bookings: bookings,
		Staff:    staff,
		Coupons:  coupons,
		Loyalty:  loyalty,
	}
	return svc, drafts, cat, bookings, coupons, loyalty
}
