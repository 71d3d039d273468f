// Package testutil holds in-memory stand-ins for the Document Store, the
// Media Host and the job queue, shared by service and router tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/deppfellow/storefront-admin/internal/media"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStoreDown is a generic store failure for tests to inject.
var ErrStoreDown = errors.New("store unavailable")

// invalidID mimics PostgreSQL rejecting a value that is not a uuid.
func invalidID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &pgconn.PgError{
			Severity: "ERROR",
			Code:     "22P02",
			Message:  fmt.Sprintf("invalid input syntax for type uuid: %q", id),
		}
	}
	return nil
}

func notFound(table, id string) error {
	return fmt.Errorf("failed to collect row from table:%s: id=%s: %w", table, id, pgx.ErrNoRows)
}

// Products is an in-memory product store. Set Err to make every call fail,
// or the per-operation errors to fail only that call.
type Products struct {
	mu   sync.Mutex
	rows []model.Product

	Err       error
	InsertErr error
	UpdateErr error
	DeleteErr error
}

func NewProducts() *Products { return &Products{} }

func (s *Products) Insert(_ context.Context, fields model.ProductFields) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(s.Err, s.InsertErr); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := model.Product{Base: model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}}
	fields.Apply(&p)
	s.rows = append(s.rows, p)
	return &p, nil
}

func (s *Products) FindByID(_ context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err := invalidID(id); err != nil {
		return nil, err
	}
	for _, p := range s.rows {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, notFound("products", id)
}

func (s *Products) Find(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Product{}
	for _, p := range s.rows {
		if filter.Category == "" || p.Category == filter.Category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Products) FindAll(ctx context.Context) ([]model.Product, error) {
	return s.Find(ctx, model.ProductFilter{})
}

func (s *Products) UpdateByID(_ context.Context, id string, fields model.ProductFields) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(s.Err, s.UpdateErr); err != nil {
		return nil, err
	}
	if err := invalidID(id); err != nil {
		return nil, err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			fields.Apply(&s.rows[i])
			s.rows[i].UpdatedAt = time.Now().UTC()
			p := s.rows[i]
			return &p, nil
		}
	}
	return nil, notFound("products", id)
}

func (s *Products) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(s.Err, s.DeleteErr); err != nil {
		return err
	}
	if err := invalidID(id); err != nil {
		return err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored products.
func (s *Products) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// Sliders is an in-memory slider store.
type Sliders struct {
	mu   sync.Mutex
	rows []model.Slider

	Err       error
	InsertErr error
	DeleteErr error
}

func NewSliders() *Sliders { return &Sliders{} }

func (s *Sliders) Insert(_ context.Context, imageURL, publicID string) (*model.Slider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(s.Err, s.InsertErr); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sl := model.Slider{
		Base:     model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		ImageURL: imageURL,
		PublicID: publicID,
	}
	s.rows = append(s.rows, sl)
	return &sl, nil
}

func (s *Sliders) FindByID(_ context.Context, id string) (*model.Slider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err := invalidID(id); err != nil {
		return nil, err
	}
	for _, sl := range s.rows {
		if sl.ID == id {
			return &sl, nil
		}
	}
	return nil, notFound("sliders", id)
}

func (s *Sliders) FindAll(_ context.Context) ([]model.Slider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Slider{}, s.rows...), nil
}

func (s *Sliders) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(s.Err, s.DeleteErr); err != nil {
		return err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return notFound("sliders", id)
}

// Put stores sl as-is, assigning an id when empty.
func (s *Sliders) Put(sl model.Slider) model.Slider {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}
	s.rows = append(s.rows, sl)
	return sl
}

func (s *Sliders) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// Media is a Media Host that records calls.
type Media struct {
	mu         sync.Mutex
	Uploads    []string
	Destroyed  []string
	UploadErr  error
	DestroyErr error
	n          int
}

var _ media.Host = (*Media)(nil)

func (m *Media) Upload(_ context.Context, localPath string) (media.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UploadErr != nil {
		return media.UploadResult{}, m.UploadErr
	}
	m.n++
	m.Uploads = append(m.Uploads, localPath)
	id := fmt.Sprintf("catalog/img-%d", m.n)
	return media.UploadResult{
		SecureURL: "https://media.example.com/" + id + ".jpg",
		PublicID:  id,
	}, nil
}

func (m *Media) Destroy(_ context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DestroyErr != nil {
		return m.DestroyErr
	}
	m.Destroyed = append(m.Destroyed, publicID)
	return nil
}

// DestroyCalls returns a copy of the destroyed public ids.
func (m *Media) DestroyCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.Destroyed...)
}

// UploadCalls returns a copy of the uploaded paths.
func (m *Media) UploadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.Uploads...)
}

// Purger records slider purge requests.
type Purger struct {
	mu     sync.Mutex
	Queued []string
	Err    error
}

func (p *Purger) EnqueueSliderPurge(_ context.Context, sliderID, publicID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.Queued = append(p.Queued, strings.Join([]string{sliderID, publicID}, "|"))
	return nil
}
