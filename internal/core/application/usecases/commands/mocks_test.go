package commands_test

import (
	"context"
	"io"
	"log/slog"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByStudent(ctx context.Context, studentID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) TryAssign(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllAvailable(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByMover(ctx context.Context, moverID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, moverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockMoverRepository struct{ mock.Mock }

func (m *MockMoverRepository) Add(ctx context.Context, mv *mover.Mover) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMoverRepository) Update(ctx context.Context, mv *mover.Mover) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMoverRepository) Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mover.Mover), args.Error(1)
}

// MockUoW implements every unit-of-work combination the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) MoverRepository() ports.MoverRepository {
	args := m.Called()
	return args.Get(0).(ports.MoverRepository)
}

// Factory adapters returning the same mock for every Create call.

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderJobUoWFactory struct{ uow *MockUoW }

func (f orderJobUoWFactory) Create() commands.OrderJobUoW { return f.uow }

type jobUoWFactory struct{ uow *MockUoW }

func (f jobUoWFactory) Create() commands.JobUoW { return f.uow }

type moverUoWFactory struct{ uow *MockUoW }

func (f moverUoWFactory) Create() commands.MoverUoW { return f.uow }

type MockPaymentClient struct{ mock.Mock }

func (m *MockPaymentClient) Charge(ctx context.Context, studentID string, amount float64, description string) error {
	args := m.Called(ctx, studentID, amount, description)
	return args.Error(0)
}

func (m *MockPaymentClient) Refund(ctx context.Context, studentID string, amount float64, description string) error {
	args := m.Called(ctx, studentID, amount, description)
	return args.Error(0)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) Validate(ctx context.Context, address kernel.Address) (kernel.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return kernel.Address{}, args.Error(1)
	}
	return args.Get(0).(kernel.Address), args.Error(1)
}
