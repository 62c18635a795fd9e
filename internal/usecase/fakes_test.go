package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/gateway"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces the service tests exercise.
// Only the methods a test path touches do real work; the rest are inert.

type fakeSafariRepo struct {
	safaris map[uuid.UUID]*entity.Safari
}

func newFakeSafariRepo(safaris ...*entity.Safari) *fakeSafariRepo {
	m := make(map[uuid.UUID]*entity.Safari, len(safaris))
	for _, s := range safaris {
		m[s.ID] = s
	}
	return &fakeSafariRepo{safaris: m}
}

func (f *fakeSafariRepo) Create(_ context.Context, safari *entity.Safari) error {
	f.safaris[safari.ID] = safari
	return nil
}

func (f *fakeSafariRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Safari, error) {
	return f.safaris[id], nil
}

func (f *fakeSafariRepo) FindAll(context.Context, string, string) ([]*entity.Safari, error) {
	out := make([]*entity.Safari, 0, len(f.safaris))
	for _, s := range f.safaris {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSafariRepo) FindByDestinationID(context.Context, uuid.UUID) ([]*entity.Safari, error) {
	return nil, nil
}

func (f *fakeSafariRepo) FindFeatured(context.Context, int) ([]*entity.Safari, error) {
	return nil, nil
}

func (f *fakeSafariRepo) FindByPackageID(context.Context, uuid.UUID) ([]*entity.Safari, error) {
	return nil, nil
}

func (f *fakeSafariRepo) Update(_ context.Context, safari *entity.Safari) error {
	f.safaris[safari.ID] = safari
	return nil
}

func (f *fakeSafariRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.safaris, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	appendedHistory map[uuid.UUID][]byte
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	m := make(map[uuid.UUID]*entity.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{
		bookings:        m,
		appendedHistory: make(map[uuid.UUID][]byte),
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindAll(context.Context, int, int) ([]*entity.Booking, error) {
	out := make([]*entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) UpdateStatuses(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	b.PaymentStatus = paymentStatus
	return nil
}

func (f *fakeBookingRepo) AppendPaymentHistory(_ context.Context, bookingID uuid.UUID, record []byte) error {
	f.appendedHistory[bookingID] = record
	return nil
}

type fakeBookingHistoryRepo struct {
	entries []*entity.BookingHistory
}

func (f *fakeBookingHistoryRepo) Create(_ context.Context, entry *entity.BookingHistory) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeBookingHistoryRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.BookingHistory, error) {
	var out []*entity.BookingHistory
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeBookingHistoryRepo) ExistsByBookingID(_ context.Context, bookingID uuid.UUID) (bool, error) {
	for _, e := range f.entries {
		if e.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo(payments ...*entity.Payment) *fakePaymentRepo {
	m := make(map[uuid.UUID]*entity.Payment, len(payments))
	for _, p := range payments {
		m[p.ID] = p
	}
	return &fakePaymentRepo{payments: m}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByReference(_ context.Context, reference string, gw entity.PaymentGateway) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.Reference == reference && p.Gateway == gw {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, paymentID uuid.UUID, status entity.PaymentStatus, rawResponse json.RawMessage) error {
	p, ok := f.payments[paymentID]
	if !ok {
		return errors.New("payment not found")
	}
	p.Status = status
	if rawResponse != nil {
		p.RawResponse = rawResponse
	}
	return nil
}

type fakeEnquiryRepo struct {
	enquiries map[uuid.UUID]*entity.AccommodationEnquiry
}

func newFakeEnquiryRepo(enquiries ...*entity.AccommodationEnquiry) *fakeEnquiryRepo {
	m := make(map[uuid.UUID]*entity.AccommodationEnquiry, len(enquiries))
	for _, e := range enquiries {
		m[e.ID] = e
	}
	return &fakeEnquiryRepo{enquiries: m}
}

func (f *fakeEnquiryRepo) Create(_ context.Context, enquiry *entity.AccommodationEnquiry) error {
	f.enquiries[enquiry.ID] = enquiry
	return nil
}

func (f *fakeEnquiryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AccommodationEnquiry, error) {
	return f.enquiries[id], nil
}

func (f *fakeEnquiryRepo) FindAll(context.Context) ([]*entity.AccommodationEnquiry, error) {
	out := make([]*entity.AccommodationEnquiry, 0, len(f.enquiries))
	for _, e := range f.enquiries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEnquiryRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.AccommodationEnquiry, error) {
	var out []*entity.AccommodationEnquiry
	for _, e := range f.enquiries {
		if e.UserID != nil && *e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnquiryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.EnquiryStatus, adminResponse *string) error {
	e, ok := f.enquiries[id]
	if !ok {
		return errors.New("enquiry not found")
	}
	e.Status = status
	if adminResponse != nil {
		e.AdminResponse = adminResponse
	}
	return nil
}

type fakeEnquiryMessageRepo struct {
	messages []*entity.AccommodationEnquiryMessage

	markedRead []uuid.UUID
}

func (f *fakeEnquiryMessageRepo) Create(_ context.Context, message *entity.AccommodationEnquiryMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeEnquiryMessageRepo) FindByEnquiryID(_ context.Context, enquiryID uuid.UUID) ([]*entity.AccommodationEnquiryMessage, error) {
	var out []*entity.AccommodationEnquiryMessage
	for _, m := range f.messages {
		if m.EnquiryID == enquiryID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeEnquiryMessageRepo) MarkAdminMessagesRead(_ context.Context, enquiryID uuid.UUID) error {
	f.markedRead = append(f.markedRead, enquiryID)
	return nil
}

type fakeAccommodationRepo struct {
	accommodations map[uuid.UUID]*entity.Accommodation
}

func newFakeAccommodationRepo(accommodations ...*entity.Accommodation) *fakeAccommodationRepo {
	m := make(map[uuid.UUID]*entity.Accommodation, len(accommodations))
	for _, a := range accommodations {
		m[a.ID] = a
	}
	return &fakeAccommodationRepo{accommodations: m}
}

func (f *fakeAccommodationRepo) Create(_ context.Context, accommodation *entity.Accommodation) error {
	f.accommodations[accommodation.ID] = accommodation
	return nil
}

func (f *fakeAccommodationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	return f.accommodations[id], nil
}

func (f *fakeAccommodationRepo) FindAll(context.Context, string) ([]*entity.Accommodation, error) {
	out := make([]*entity.Accommodation, 0, len(f.accommodations))
	for _, a := range f.accommodations {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccommodationRepo) FindFeatured(context.Context) ([]*entity.Accommodation, error) {
	return nil, nil
}

func (f *fakeAccommodationRepo) Update(_ context.Context, accommodation *entity.Accommodation) error {
	f.accommodations[accommodation.ID] = accommodation
	return nil
}

func (f *fakeAccommodationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.accommodations, id)
	return nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo(reviews ...*entity.Review) *fakeReviewRepo {
	m := make(map[uuid.UUID]*entity.Review, len(reviews))
	for _, r := range reviews {
		m[r.ID] = r
	}
	return &fakeReviewRepo{reviews: m}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindModeratedBySafariID(_ context.Context, safariID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.SafariID == safariID && r.IsModerated {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindUnmoderated(context.Context) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if !r.IsModerated {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Approve(_ context.Context, id uuid.UUID) error {
	r, ok := f.reviews[id]
	if !ok {
		return errors.New("review not found")
	}
	r.IsModerated = true
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

type fakePackageRepo struct {
	packages map[uuid.UUID]*entity.Package
	safaris  map[uuid.UUID][]uuid.UUID
}

func newFakePackageRepo(packages ...*entity.Package) *fakePackageRepo {
	m := make(map[uuid.UUID]*entity.Package, len(packages))
	for _, p := range packages {
		m[p.ID] = p
	}
	return &fakePackageRepo{
		packages: m,
		safaris:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *entity.Package) error {
	f.packages[pkg.ID] = pkg
	return nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	return f.packages[id], nil
}

func (f *fakePackageRepo) FindAll(context.Context, string, string) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePackageRepo) Update(_ context.Context, pkg *entity.Package) error {
	f.packages[pkg.ID] = pkg
	return nil
}

func (f *fakePackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.packages, id)
	return nil
}

func (f *fakePackageRepo) AddSafari(_ context.Context, packageID, safariID uuid.UUID) error {
	f.safaris[packageID] = append(f.safaris[packageID], safariID)
	return nil
}

func (f *fakePackageRepo) RemoveSafari(_ context.Context, packageID, safariID uuid.UUID) error {
	kept := f.safaris[packageID][:0]
	for _, id := range f.safaris[packageID] {
		if id != safariID {
			kept = append(kept, id)
		}
	}
	f.safaris[packageID] = kept
	return nil
}

// fakeMailer records sends and optionally fails every one of them.
type fakeMailer struct {
	fail bool
	sent []string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, to)
	return nil
}

// fakeGatewayClient returns a fixed checkout result or error.
type fakeGatewayClient struct {
	result *gateway.CheckoutResult
	err    error

	lastRequest gateway.CheckoutRequest
}

func (f *fakeGatewayClient) Checkout(_ context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutResult, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
