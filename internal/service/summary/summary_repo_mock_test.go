package summary

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	CreateFunc    func(ctx context.Context, s *domain.Summary) (*domain.Summary, error)
	DeleteFunc    func(ctx context.Context, userID string, id int64) error
	DeleteAllFunc func(ctx context.Context, userID string) (int64, error)
	ListFunc      func(ctx context.Context, userID string, since *time.Time, limit int, offset int) ([]domain.Summary, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Summary
		}
		Delete []struct {
			Ctx    context.Context
			UserID string
			ID     int64
		}
		DeleteAll []struct {
			Ctx    context.Context
			UserID string
		}
		List []struct {
			Ctx    context.Context
			UserID string
			Since  *time.Time
			Limit  int
			Offset int
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *summaryRepoMock) Create(ctx context.Context, s *domain.Summary) (*domain.Summary, error) {
	if mock.CreateFunc == nil {
		panic("summaryRepoMock.CreateFunc: method is nil but summaryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Summary
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *summaryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Summary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *summaryRepoMock) Delete(ctx context.Context, userID string, id int64) error {
	if mock.DeleteFunc == nil {
		panic("summaryRepoMock.DeleteFunc: method is nil but summaryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *summaryRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *summaryRepoMock) DeleteAll(ctx context.Context, userID string) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("summaryRepoMock.DeleteAllFunc: method is nil but summaryRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, userID)
}

func (mock *summaryRepoMock) DeleteAllCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *summaryRepoMock) List(ctx context.Context, userID string, since *time.Time, limit int, offset int) ([]domain.Summary, error) {
	if mock.ListFunc == nil {
		panic("summaryRepoMock.ListFunc: method is nil but summaryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Since  *time.Time
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Since: since, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, since, limit, offset)
}

func (mock *summaryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID string
	Since  *time.Time
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
