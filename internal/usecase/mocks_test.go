package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/alexandria-crm/internal/entity"
)

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Append(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateByID(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockNoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) FindAll(ctx context.Context) ([]entity.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Note), args.Error(1)
}

func (m *MockNoteRepository) FindByContactID(ctx context.Context, contactID string) ([]entity.Note, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Note), args.Error(1)
}

func (m *MockNoteRepository) Append(ctx context.Context, n *entity.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockEmailLogRepository
type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) FindAll(ctx context.Context) ([]entity.EmailLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailLogEntry), args.Error(1)
}

func (m *MockEmailLogRepository) FindByContactID(ctx context.Context, contactID string) ([]entity.EmailLogEntry, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmailLogEntry), args.Error(1)
}

func (m *MockEmailLogRepository) Append(ctx context.Context, e *entity.EmailLogEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(account, to, subject, body string) error {
	args := m.Called(account, to, subject, body)
	return args.Error(0)
}
