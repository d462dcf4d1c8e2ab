package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

const defaultCountry = "Germany"

// -------- Barber --------

func (s *Store) ListBarbers(ctx context.Context, filter catalog.BarberFilter) ([]models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	city := strings.ToLower(strings.TrimSpace(filter.City))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]models.Barber, 0)
	for _, b := range s.barbers {
		if city != "" && (b.City == nil || strings.ToLower(*b.City) != city) {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		out = append(out, *cloneBarber(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matchesSearch(b models.Barber, needle string) bool {
	fields := []string{b.ShopName, b.Location}
	if b.Bio != nil {
		fields = append(fields, *b.Bio)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func (s *Store) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneBarber(b), nil
}

func (s *Store) GetBarberByUserID(ctx context.Context, userID string) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.barbers {
		if b.UserID == userID {
			return cloneBarber(b), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) CreateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.barbers {
		if existing.UserID == b.UserID {
			return domain.ErrDuplicate
		}
	}
	if b.Country == "" {
		b.Country = defaultCountry
	}

	now := s.now()
	b.ID = s.nextID("barbers")
	b.CreatedAt = now
	b.UpdatedAt = now
	s.barbers[b.ID] = *cloneBarber(*b)
	return nil
}

func (s *Store) UpdateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.barbers[b.ID]; !ok {
		return domain.ErrNotFound
	}
	b.UpdatedAt = s.now()
	s.barbers[b.ID] = *cloneBarber(*b)
	return nil
}

// -------- Service --------

func (s *Store) ListServices(ctx context.Context, barberID uint, includeInactive bool) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, svc := range s.services {
		if svc.BarberID != barberID || (!includeInactive && !svc.IsActive) {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	svc.ID = s.nextID("services")
	svc.CreatedAt = now
	svc.UpdatedAt = now

	row := *svc
	row.Barber = nil
	s.services[row.ID] = row
	return nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[svc.ID]; !ok {
		return domain.ErrNotFound
	}
	svc.UpdatedAt = s.now()

	row := *svc
	row.Barber = nil
	s.services[row.ID] = row
	return nil
}

// -------- Subscription --------

func (s *Store) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Price.Cmp(out[j].Price.Decimal); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpsertSubscription(ctx context.Context, sub *models.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.subscriptions {
		if existing.Name == sub.Name {
			sub.ID = id
			s.subscriptions[id] = *sub
			return nil
		}
	}
	sub.ID = s.nextID("subscriptions")
	s.subscriptions[sub.ID] = *sub
	return nil
}

// -------- Portfolio --------

func (s *Store) CreatePortfolioPhoto(ctx context.Context, p *models.PortfolioPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID("portfolio_photos")
	p.CreatedAt = s.now()
	s.photos[p.ID] = *p
	return nil
}

func (s *Store) ListPortfolioPhotos(ctx context.Context, barberID uint) ([]models.PortfolioPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PortfolioPhoto, 0)
	for _, p := range s.photos {
		if p.BarberID == barberID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
