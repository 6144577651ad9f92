package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

// In-memory stand-ins for the gorm repositories. They mirror the repository
// contract, including gorm.ErrRecordNotFound on misses.

type fakeLeaseStore struct {
	leases   map[uuid.UUID]*model.Lease
	statuses map[uuid.UUID]model.LeaseStatus
}

func newFakeLeaseStore(leases ...*model.Lease) *fakeLeaseStore {
	s := &fakeLeaseStore{
		leases:   make(map[uuid.UUID]*model.Lease),
		statuses: make(map[uuid.UUID]model.LeaseStatus),
	}
	for _, l := range leases {
		s.leases[l.ID] = l
	}
	return s
}

func (s *fakeLeaseStore) List(ctx context.Context) ([]model.Lease, error) {
	out := make([]model.Lease, 0, len(s.leases))
	for _, l := range s.leases {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaseStart.Before(out[j].LeaseStart) })
	return out, nil
}

func (s *fakeLeaseStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Lease, error) {
	all, _ := s.List(ctx)
	var out []model.Lease
	for _, l := range all {
		if l.TenantID == tenantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeLeaseStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	l, ok := s.leases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *fakeLeaseStore) Create(ctx context.Context, lease *model.Lease) error {
	copied := *lease
	s.leases[lease.ID] = &copied
	return nil
}

func (s *fakeLeaseStore) Update(ctx context.Context, lease *model.Lease) error {
	if _, ok := s.leases[lease.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *lease
	s.leases[lease.ID] = &copied
	return nil
}

func (s *fakeLeaseStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.leases[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.leases, id)
	return nil
}

func (s *fakeLeaseStore) SetStatus(ctx context.Context, id uuid.UUID, status model.LeaseStatus) error {
	l, ok := s.leases[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	s.statuses[id] = status
	return nil
}

func (s *fakeLeaseStore) CreateRenewal(ctx context.Context, oldID uuid.UUID, renewal *model.Lease) error {
	old, ok := s.leases[oldID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	old.Status = model.LeaseStatusExpired
	copied := *renewal
	s.leases[renewal.ID] = &copied
	return nil
}

type fakePropertyStore struct {
	properties map[uuid.UUID]*model.Property
	statuses   map[uuid.UUID]model.PropertyStatus
}

func newFakePropertyStore(properties ...*model.Property) *fakePropertyStore {
	s := &fakePropertyStore{
		properties: make(map[uuid.UUID]*model.Property),
		statuses:   make(map[uuid.UUID]model.PropertyStatus),
	}
	for _, p := range properties {
		s.properties[p.ID] = p
	}
	return s
}

func (s *fakePropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	p, ok := s.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *fakePropertyStore) SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error {
	if _, ok := s.properties[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.statuses[id] = status
	return nil
}

type fakeParkingStore struct {
	spaces   map[uuid.UUID]*model.ParkingSpace
	statuses map[uuid.UUID]model.PropertyStatus
}

func newFakeParkingStore(spaces ...*model.ParkingSpace) *fakeParkingStore {
	s := &fakeParkingStore{
		spaces:   make(map[uuid.UUID]*model.ParkingSpace),
		statuses: make(map[uuid.UUID]model.PropertyStatus),
	}
	for _, sp := range spaces {
		s.spaces[sp.ID] = sp
	}
	return s
}

func (s *fakeParkingStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ParkingSpace, error) {
	sp, ok := s.spaces[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sp, nil
}

func (s *fakeParkingStore) SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error {
	if _, ok := s.spaces[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.statuses[id] = status
	return nil
}

type fakeTenantStore struct {
	tenants map[uuid.UUID]*model.Tenant
}

func newFakeTenantStore(tenants ...*model.Tenant) *fakeTenantStore {
	s := &fakeTenantStore{tenants: make(map[uuid.UUID]*model.Tenant)}
	for _, t := range tenants {
		s.tenants[t.ID] = t
	}
	return s
}

func (s *fakeTenantStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	t, ok := s.tenants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

type fakeScheduleStore struct {
	entries map[uuid.UUID]*model.PaymentSchedule
}

func newFakeScheduleStore(entries ...*model.PaymentSchedule) *fakeScheduleStore {
	s := &fakeScheduleStore{entries: make(map[uuid.UUID]*model.PaymentSchedule)}
	for _, e := range entries {
		s.entries[e.ID] = e
	}
	return s
}

func (s *fakeScheduleStore) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error) {
	var out []model.PaymentSchedule
	for _, e := range s.entries {
		if e.LeaseID == leaseID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodNumber < out[j].PeriodNumber })
	return out, nil
}

func (s *fakeScheduleStore) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentSchedule, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *fakeScheduleStore) CountByLease(ctx context.Context, leaseID uuid.UUID) (int64, error) {
	var count int64
	for _, e := range s.entries {
		if e.LeaseID == leaseID {
			count++
		}
	}
	return count, nil
}

func (s *fakeScheduleStore) CreateBatch(ctx context.Context, entries []model.PaymentSchedule) error {
	for i := range entries {
		copied := entries[i]
		s.entries[copied.ID] = &copied
	}
	return nil
}

func (s *fakeScheduleStore) ReplaceForLease(ctx context.Context, leaseID uuid.UUID, entries []model.PaymentSchedule) error {
	for id, e := range s.entries {
		if e.LeaseID == leaseID {
			delete(s.entries, id)
		}
	}
	return s.CreateBatch(ctx, entries)
}

func (s *fakeScheduleStore) Update(ctx context.Context, entry *model.PaymentSchedule) error {
	if _, ok := s.entries[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *entry
	s.entries[entry.ID] = &copied
	return nil
}

func (s *fakeScheduleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.entries, id)
	return nil
}

// fakeTransactionStore records writes and applies schedule adjustments
// against a linked fakeScheduleStore the way the gorm repository does inside
// its database transaction.
type fakeTransactionStore struct {
	transactions map[uuid.UUID]*model.Transaction
	schedules    *fakeScheduleStore
	applied      []billing.ScheduleAdjustment
}

func newFakeTransactionStore(schedules *fakeScheduleStore) *fakeTransactionStore {
	return &fakeTransactionStore{
		transactions: make(map[uuid.UUID]*model.Transaction),
		schedules:    schedules,
	}
}

func (s *fakeTransactionStore) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range s.transactions {
		if filter.LeaseID != nil && (t.LeaseID == nil || *t.LeaseID != *filter.LeaseID) {
			continue
		}
		if filter.TransactionType != nil && t.TransactionType != *filter.TransactionType {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionDate.Before(out[j].TransactionDate) })
	return out, nil
}

func (s *fakeTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := s.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTransactionStore) apply(adjustments []billing.ScheduleAdjustment) error {
	for _, adj := range adjustments {
		id, err := uuid.Parse(adj.ScheduleID)
		if err != nil {
			return err
		}
		entry, ok := s.schedules.entries[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		*entry = billing.ApplyPayment(*entry, adj.Delta)
		s.applied = append(s.applied, adj)
	}
	return nil
}

func (s *fakeTransactionStore) CreateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error {
	copied := *transaction
	s.transactions[transaction.ID] = &copied
	return s.apply(adjustments)
}

func (s *fakeTransactionStore) UpdateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error {
	if _, ok := s.transactions[transaction.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *transaction
	s.transactions[transaction.ID] = &copied
	return s.apply(adjustments)
}

func (s *fakeTransactionStore) DeleteWithAdjustments(ctx context.Context, id uuid.UUID, adjustments []billing.ScheduleAdjustment) error {
	if _, ok := s.transactions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.transactions, id)
	return s.apply(adjustments)
}
