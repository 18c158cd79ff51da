package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/domain/product"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
)

// MockProductRepository is an in-memory product.Repository
type MockProductRepository struct {
	mu       sync.Mutex
	products map[int64]*product.Product
	nextID   int64
}

// NewMockProductRepository creates a new mock product repository
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int64]*product.Product),
		nextID:   1,
	}
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.products {
		if existing.Name == p.Name {
			return 0, errors.Conflict("product with this name already exists")
		}
	}

	p.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := *p
	m.products[p.ID] = &cp
	return p.ID, nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, errors.NotFound("product")
	}
	cp := *p
	return &cp, nil
}

func (m *MockProductRepository) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*product.Product, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		cp := *m.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[p.ID]; !ok {
		return errors.NotFound("product")
	}
	for id, existing := range m.products {
		if id != p.ID && existing.Name == p.Name {
			return errors.Conflict("product with this name already exists")
		}
	}

	p.UpdatedAt = time.Now().UTC()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return errors.NotFound("product")
	}
	delete(m.products, id)
	return nil
}

// MockResourceRepository is an in-memory resource.Repository
type MockResourceRepository struct {
	mu        sync.Mutex
	resources map[int64]*resource.Resource
	nextID    int64
}

// NewMockResourceRepository creates a new mock resource repository
func NewMockResourceRepository() *MockResourceRepository {
	return &MockResourceRepository{
		resources: make(map[int64]*resource.Resource),
		nextID:    1,
	}
}

func (m *MockResourceRepository) Create(ctx context.Context, res *resource.Resource) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.resources {
		if existing.ResourceID == res.ResourceID {
			return 0, errors.Conflict("resource with this resource_id already exists")
		}
	}

	res.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	cp := *res
	m.resources[res.ID] = &cp
	return res.ID, nil
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.resources[id]
	if !ok {
		return nil, errors.NotFound("resource")
	}
	cp := *res
	return &cp, nil
}

func (m *MockResourceRepository) GetByResourceID(ctx context.Context, resourceID string) (*resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, res := range m.resources {
		if res.ResourceID == resourceID {
			cp := *res
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockResourceRepository) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*resource.Resource, 0)
	for _, id := range m.sortedIDs() {
		cp := *m.resources[id]
		out = append(out, &cp)
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockResourceRepository) ListMonitored(ctx context.Context) ([]*resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*resource.Resource, 0)
	for _, id := range m.sortedIDs() {
		if m.resources[id].MonitoringEnabled {
			cp := *m.resources[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resources[res.ID]; !ok {
		return errors.NotFound("resource")
	}

	res.UpdatedAt = time.Now().UTC()
	cp := *res
	m.resources[res.ID] = &cp
	return nil
}

func (m *MockResourceRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.resources[id]; !ok {
		return errors.NotFound("resource")
	}
	delete(m.resources, id)
	return nil
}

func (m *MockResourceRepository) sortedIDs() []int64 {
	ids := make([]int64, 0, len(m.resources))
	for id := range m.resources {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MockAlertRepository is an in-memory alert.Repository
type MockAlertRepository struct {
	mu     sync.Mutex
	alerts map[int64]*alert.Alert
	nextID int64
}

// NewMockAlertRepository creates a new mock alert repository
func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		alerts: make(map[int64]*alert.Alert),
		nextID: 1,
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, a *alert.Alert) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = m.nextID
	m.nextID++
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = time.Now().UTC()
	}

	cp := *a
	m.alerts[a.ID] = &cp
	return a.ID, nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alerts[id]
	if !ok {
		return nil, errors.NotFound("alert")
	}
	cp := *a
	return &cp, nil
}

func (m *MockAlertRepository) List(ctx context.Context, filter alert.Filter, skip, limit int) ([]*alert.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.alerts))
	for id := range m.alerts {
		ids = append(ids, id)
	}
	// Newest first
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]*alert.Alert, 0)
	for _, id := range ids {
		a := m.alerts[id]
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && a.Severity != filter.Severity {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.alerts[a.ID]; !ok {
		return errors.NotFound("alert")
	}
	cp := *a
	m.alerts[a.ID] = &cp
	return nil
}

func (m *MockAlertRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.alerts[id]; !ok {
		return errors.NotFound("alert")
	}
	delete(m.alerts, id)
	return nil
}

// MockAuditRepository is an in-memory audit.Repository
type MockAuditRepository struct {
	mu      sync.Mutex
	entries map[int64]*audit.Entry
	nextID  int64
}

// NewMockAuditRepository creates a new mock audit repository
func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{
		entries: make(map[int64]*audit.Entry),
		nextID:  1,
	}
}

func (m *MockAuditRepository) Create(ctx context.Context, e *audit.Entry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.nextID
	m.nextID++
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Actor == "" {
		e.Actor = audit.DefaultActor
	}

	cp := *e
	m.entries[e.ID] = &cp
	return e.ID, nil
}

func (m *MockAuditRepository) GetByID(ctx context.Context, id int64) (*audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, errors.NotFound("audit log entry")
	}
	cp := *e
	return &cp, nil
}

func (m *MockAuditRepository) List(ctx context.Context, skip, limit int) ([]*audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.sortedNewestFirst()
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockAuditRepository) ListByAlert(ctx context.Context, alertID int64) ([]*audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*audit.Entry, 0)
	for _, e := range m.sortedNewestFirst() {
		if e.AlertID == alertID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockAuditRepository) sortedNewestFirst() []*audit.Entry {
	ids := make([]int64, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]*audit.Entry, 0, len(ids))
	for _, id := range ids {
		cp := *m.entries[id]
		out = append(out, &cp)
	}
	return out
}
