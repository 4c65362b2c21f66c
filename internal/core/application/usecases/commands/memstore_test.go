package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the transactional layer. Aggregates
// are stored as snapshots and rebuilt on every Get so concurrent handlers
// never share mutable state, matching how rows behave behind a real
// repository. TryAssign applies the same conditional-write rule as the SQL
// implementation: flip to Accepted only while the stored row is still
// Available, under a single lock.
type memStore struct {
	mu     sync.Mutex
	jobs   map[kernel.UUID]jobRow
	orders map[kernel.UUID]*order.Order
}

type jobRow struct {
	orderID       kernel.UUID
	studentID     kernel.UUID
	moverID       *kernel.UUID
	jobType       job.Type
	status        job.Status
	volume        int
	price         float64
	pickup        kernel.Address
	dropoff       kernel.Address
	scheduledTime time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func newMemStore() *memStore {
	return &memStore{
		jobs:   make(map[kernel.UUID]jobRow),
		orders: make(map[kernel.UUID]*order.Order),
	}
}

func (s *memStore) putJob(j *job.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID()] = snapshotJob(j)
}

func snapshotJob(j *job.Job) jobRow {
	var moverID *kernel.UUID
	if j.Mover() != nil {
		id := *j.Mover()
		moverID = &id
	}
	return jobRow{
		orderID:       j.OrderID(),
		studentID:     j.StudentID(),
		moverID:       moverID,
		jobType:       j.JobType(),
		status:        j.Status(),
		volume:        j.Volume(),
		price:         j.Price(),
		pickup:        j.PickupAddress(),
		dropoff:       j.DropoffAddress(),
		scheduledTime: j.ScheduledTime(),
		createdAt:     j.CreatedAt(),
		updatedAt:     j.UpdatedAt(),
	}
}

func (s *memStore) restoreJob(id kernel.UUID, row jobRow) (*job.Job, error) {
	return job.RestoreJob(id, row.orderID, row.studentID, row.moverID,
		row.jobType, row.status, row.volume, row.price,
		row.pickup, row.dropoff, row.scheduledTime, row.createdAt, row.updatedAt)
}

// memUoW satisfies the order+job unit of work over a shared memStore.
// Begin, Commit and Rollback are no-ops: every repository call applies
// immediately, which is enough for exercising assignment semantics.
type memUoW struct{ store *memStore }

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) OrderRepository() ports.OrderRepository { return memOrderRepo{u.store} }
func (u memUoW) JobRepository() ports.JobRepository     { return memJobRepo{u.store} }

type memUoWFactory struct{ store *memStore }

func (f memUoWFactory) Create() commands.OrderJobUoW { return memUoW{f.store} }

type memJobRepo struct{ store *memStore }

func (r memJobRepo) Add(_ context.Context, j *job.Job) error {
	r.store.putJob(j)
	return nil
}

func (r memJobRepo) Update(_ context.Context, j *job.Job) error {
	r.store.putJob(j)
	return nil
}

func (r memJobRepo) TryAssign(_ context.Context, j *job.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.jobs[j.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("jobID", j.ID().String())
	}
	if row.status != job.StatusAvailable {
		return errs.NewAlreadyAssignedError(j.ID().String())
	}
	r.store.jobs[j.ID()] = snapshotJob(j)
	return nil
}

func (r memJobRepo) Get(_ context.Context, id kernel.UUID) (*job.Job, error) {
	r.store.mu.Lock()
	row, ok := r.store.jobs[id]
	r.store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("jobID", id.String())
	}
	return r.store.restoreJob(id, row)
}

func (r memJobRepo) GetAllAvailable(_ context.Context) ([]*job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var available []*job.Job
	for id, row := range r.store.jobs {
		if row.status != job.StatusAvailable {
			continue
		}
		j, err := r.store.restoreJob(id, row)
		if err != nil {
			return nil, err
		}
		available = append(available, j)
	}
	return available, nil
}

func (r memJobRepo) GetByOrder(_ context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var jobs []*job.Job
	for id, row := range r.store.jobs {
		if !row.orderID.IsEqual(orderID) {
			continue
		}
		j, err := r.store.restoreJob(id, row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (r memJobRepo) GetByMover(_ context.Context, moverID kernel.UUID) ([]*job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var jobs []*job.Job
	for id, row := range r.store.jobs {
		if row.moverID == nil || !row.moverID.IsEqual(moverID) {
			continue
		}
		j, err := r.store.restoreJob(id, row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

type memOrderRepo struct{ store *memStore }

func (r memOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders[o.ID()] = o
	return nil
}

func (r memOrderRepo) Update(_ context.Context, o *order.Order) error {
	return r.Add(context.Background(), o)
}

func (r memOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return o, nil
}

func (r memOrderRepo) GetActiveByStudent(_ context.Context, studentID kernel.UUID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, o := range r.store.orders {
		if o.StudentID().IsEqual(studentID) && o.IsActive() {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("studentID", studentID.String())
}

func (r memOrderRepo) GetByIdempotencyKey(_ context.Context, key string) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, o := range r.store.orders {
		if o.IdempotencyKey() == key {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("idempotencyKey", key)
}

// seedMemStore creates jobCount pending orders, each with one available
// storage job, and returns the jobs.
func seedMemStore(t *testing.T, store *memStore, studentID kernel.UUID, jobCount int) []*job.Job {
	t.Helper()

	jobs := make([]*job.Job, 0, jobCount)
	for range jobCount {
		theOrder := fixturePendingOrder(t, studentID)
		require.NoError(t, memOrderRepo{store}.Add(context.Background(), theOrder))

		j := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
		store.putJob(j)
		jobs = append(jobs, j)
	}
	return jobs
}
