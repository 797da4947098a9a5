package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"pixelz/internal/app/server/api/http/middleware/auth"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/sync"
	"pixelz/internal/domain/user"
)

// MockService is a mock implementation of sync.Servicer for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) ProcessBatch(ctx context.Context, req sync.SyncRequest) (*sync.SyncResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sync.SyncResponse), args.Error(1)
}

func TestHandler_sync(t *testing.T) {
	batch := sync.SyncRequest{Events: []event.Event{
		event.NewLevelCompleted("level_1", 9500, 5, 3000),
	}}

	tests := []struct {
		name           string
		setupMock      func(service *MockService)
		expectedStatus int
		expected       *sync.SyncResponse
	}{
		{
			name: "successful batch",
			setupMock: func(service *MockService) {
				service.On("ProcessBatch", mock.Anything, batch).
					Return(&sync.SyncResponse{AcceptedCount: 1}, nil)
			},
			expected: &sync.SyncResponse{AcceptedCount: 1},
		},
		{
			name: "partial rejection is still 200",
			setupMock: func(service *MockService) {
				service.On("ProcessBatch", mock.Anything, batch).
					Return(&sync.SyncResponse{RejectedCount: 1, RejectedIndices: []int{0}}, nil)
			},
			expected: &sync.SyncResponse{RejectedCount: 1, RejectedIndices: []int{0}},
		},
		{
			name: "not authenticated",
			setupMock: func(service *MockService) {
				service.On("ProcessBatch", mock.Anything, batch).
					Return(nil, sync.ErrNotAuthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "storage failure",
			setupMock: func(service *MockService) {
				service.On("ProcessBatch", mock.Anything, batch).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := new(MockService)
			tt.setupMock(service)
			handler := NewHandler(service, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.sync(context.Background(), &syncInput{Body: batch})

			// Assert
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				var statusErr huma.StatusError
				assert.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, *tt.expected, output.Body)
			service.AssertExpectations(t)
		})
	}
}

// MockUserRepo is a mock implementation of user.Repository for testing
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetOrCreateByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	args := m.Called(ctx, authSubject)
	return args.Get(0).(user.AppUser), args.Error(1)
}

func (m *MockUserRepo) FindByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	args := m.Called(ctx, authSubject)
	return args.Get(0).(user.AppUser), args.Error(1)
}

func (m *MockUserRepo) UpdateNickname(ctx context.Context, userID, nickname string) error {
	args := m.Called(ctx, userID, nickname)
	return args.Error(0)
}

func (m *MockUserRepo) BackfillNickname(ctx context.Context, userID, nickname string) error {
	args := m.Called(ctx, userID, nickname)
	return args.Error(0)
}

// MockScoreRepo is a mock implementation of sync.Repository for testing
type MockScoreRepo struct {
	mock.Mock
}

func (m *MockScoreRepo) InsertScore(ctx context.Context, record *sync.ScoreRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Пакет со смесью валидных событий и неизвестного типа должен пройти
// валидацию тела целиком и получить позиционный отказ только по
// неизвестному индексу. Схема запроса не ограничивает тип события:
// авторитет по тегам только Validate.
func TestHandler_sync_unknownTypeInMixedBatch(t *testing.T) {
	// Arrange
	users := new(MockUserRepo)
	users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").
		Return(user.AppUser{ID: "u-1", AuthSubject: "sub-1"}, nil)
	users.On("UpdateNickname", mock.Anything, "u-1", "игрок").Return(nil)
	scores := new(MockScoreRepo)

	identityMW := huma.Middlewares{func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{Subject: "sub-1"})))
	}}
	handler := NewHandler(sync.NewService(users, scores, slog.Default()), slog.Default(), identityMW)

	_, api := humatest.New(t)
	handler.SetupRoutes(api)

	// Act
	resp := api.Post("/api/sync", map[string]any{
		"events": []map[string]any{
			{"type": "SET_NICKNAME", "payload": map[string]any{"nickname": "игрок"}},
			{"type": "BOGUS_TYPE", "payload": map[string]any{}},
		},
	})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Result().StatusCode)
	var body sync.SyncResponse
	assert.NoError(t, json.NewDecoder(resp.Result().Body).Decode(&body))
	assert.Equal(t, 1, body.AcceptedCount)
	assert.Equal(t, 1, body.RejectedCount)
	assert.Equal(t, []int{1}, body.RejectedIndices)
	users.AssertExpectations(t)
}
