package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bellasalon/booking-api/internal/dto"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/models"
)

// Implementações em memória com a mesma semântica das versões gorm,
// inclusive os mesmos códigos de erro de negócio. O serviço original
// rodava sobre dois engines de storage com comportamento idêntico; o
// contrato do repositório é o que garante essa paridade aqui.

// --------------------------------------------------
// Bookings
// --------------------------------------------------

type slotKey struct {
	serviceID uint
	date      string
	timeOfDay string
}

type BookingMemoryRepository struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]models.Booking
	slots    map[slotKey]uint
	services map[uint]models.Service
}

func NewBookingMemoryRepository(services []models.Service) *BookingMemoryRepository {
	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &BookingMemoryRepository{
		nextID:   1,
		bookings: make(map[uint]models.Booking),
		slots:    make(map[slotKey]uint),
		services: byID,
	}
}

func (r *BookingMemoryRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

func (r *BookingMemoryRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookingMemoryRepository) SlotTaken(
	ctx context.Context,
	serviceID uint,
	date string,
	timeOfDay string,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, taken := r.slots[slotKey{serviceID, date, timeOfDay}]
	return taken, nil
}

func (r *BookingMemoryRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{b.ServiceID, b.Date, b.Time}
	if _, taken := r.slots[key]; taken {
		return httperr.ErrBusiness("slot_taken")
	}

	b.ID = r.nextID
	r.nextID++
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	r.bookings[b.ID] = *b
	r.slots[key] = b.ID
	return nil
}

func (r *BookingMemoryRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return &b, nil
}

func (r *BookingMemoryRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	delete(r.bookings, id)
	delete(r.slots, slotKey{b.ServiceID, b.Date, b.Time})
	return nil
}

func (r *BookingMemoryRepository) ListAll(
	ctx context.Context,
) ([]dto.BookingView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.viewsLocked(func(models.Booking) bool { return true }), nil
}

func (r *BookingMemoryRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.viewsLocked(func(b models.Booking) bool { return b.UserID == userID }), nil
}

func (r *BookingMemoryRepository) viewsLocked(keep func(models.Booking) bool) []dto.BookingView {
	views := []dto.BookingView{}
	for _, b := range r.bookings {
		if !keep(b) {
			continue
		}
		view := dto.BookingView{
			ID:        b.ID,
			Name:      b.Name,
			Phone:     b.Phone,
			ServiceID: b.ServiceID,
			Date:      b.Date,
			Time:      b.Time,
			CreatedAt: b.CreatedAt,
			UserID:    b.UserID,
		}
		if svc, ok := r.services[b.ServiceID]; ok {
			view.ServiceName = svc.Name
			view.Duration = svc.DurationMin
			view.Price = svc.Price
		}
		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].Date != views[j].Date {
			return views[i].Date < views[j].Date
		}
		return views[i].Time < views[j].Time
	})
	return views
}

// --------------------------------------------------
// Users
// --------------------------------------------------

type UserMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		nextID: 1,
		users:  make(map[uint]models.User),
	}
}

func (r *UserMemoryRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return httperr.ErrBusiness("email_taken")
		}
	}

	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	r.users[u.ID] = *u
	return nil
}

func (r *UserMemoryRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *UserMemoryRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *UserMemoryRepository) FindByVerifyToken(
	ctx context.Context,
	token string,
) (*models.User, error) {
	return r.find(func(u models.User) bool {
		return u.VerifyToken != nil && *u.VerifyToken == token
	})
}

func (r *UserMemoryRepository) FindByResetToken(
	ctx context.Context,
	token string,
) (*models.User, error) {
	return r.find(func(u models.User) bool {
		return u.ResetToken != nil && *u.ResetToken == token
	})
}

func (r *UserMemoryRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return httperr.ErrBusiness("user_not_found")
	}
	r.users[u.ID] = *u
	return nil
}

func (r *UserMemoryRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, httperr.ErrBusiness("user_not_found")
}
