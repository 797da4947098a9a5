package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"pixelz/internal/app/server/api/http/middleware/auth"
	"pixelz/internal/domain/event"
	"pixelz/internal/domain/user"
)

// MockUserRepository is a mock implementation of user.Repository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreateByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	args := m.Called(ctx, authSubject)
	return args.Get(0).(user.AppUser), args.Error(1)
}

func (m *MockUserRepository) FindByAuthSubject(ctx context.Context, authSubject string) (user.AppUser, error) {
	args := m.Called(ctx, authSubject)
	return args.Get(0).(user.AppUser), args.Error(1)
}

func (m *MockUserRepository) UpdateNickname(ctx context.Context, userID, nickname string) error {
	args := m.Called(ctx, userID, nickname)
	return args.Error(0)
}

func (m *MockUserRepository) BackfillNickname(ctx context.Context, userID, nickname string) error {
	args := m.Called(ctx, userID, nickname)
	return args.Error(0)
}

// MockScoreRepository is a mock implementation of the Repository interface for testing
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) InsertScore(ctx context.Context, record *ScoreRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func authCtx(nickname string) context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{
		Subject:  "sub-1",
		Email:    "player@example.com",
		Nickname: nickname,
	})
}

func TestService_ProcessBatch(t *testing.T) {
	appUser := user.AppUser{ID: "u-1", AuthSubject: "sub-1"}
	nick := "старый"
	appUserWithNick := user.AppUser{ID: "u-1", AuthSubject: "sub-1", Nickname: &nick}

	tests := []struct {
		name         string
		ctx          context.Context
		events       []event.Event
		setupMocks   func(users *MockUserRepository, scores *MockScoreRepository)
		expected     *SyncResponse
		expectedErr  error
		expectAnyErr bool
	}{
		{
			name:        "no identity in context",
			ctx:         context.Background(),
			events:      []event.Event{NewTestLevelEvent()},
			setupMocks:  func(users *MockUserRepository, scores *MockScoreRepository) {},
			expectedErr: ErrNotAuthenticated,
		},
		{
			name:   "all events accepted",
			ctx:    authCtx(""),
			events: []event.Event{NewTestLevelEvent(), event.NewSetNickname("новый")},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
				scores.On("InsertScore", mock.Anything, mock.Anything).Return(nil)
				users.On("UpdateNickname", mock.Anything, "u-1", "новый").Return(nil)
			},
			expected: &SyncResponse{AcceptedCount: 2, RejectedCount: 0},
		},
		{
			name: "invalid events rejected positionally",
			ctx:  authCtx(""),
			events: []event.Event{
				NewTestLevelEvent(),
				{Type: event.Type("BOGUS"), Payload: []byte(`{}`)},
				NewTestLevelEvent(),
				event.NewSetNickname(""),
			},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
				scores.On("InsertScore", mock.Anything, mock.Anything).Return(nil)
			},
			expected: &SyncResponse{AcceptedCount: 2, RejectedCount: 2, RejectedIndices: []int{1, 3}},
		},
		{
			name:   "challenge accepted without side effects",
			ctx:    authCtx(""),
			events: []event.Event{event.NewCreateChallenge("seed", nil)},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
			},
			expected: &SyncResponse{AcceptedCount: 1, RejectedCount: 0},
		},
		{
			name:   "random level stored under sentinel id",
			ctx:    authCtx(""),
			events: []event.Event{event.NewRandomLevelPlayed("seed42", 8000, 3, 1000)},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
				scores.On("InsertScore", mock.Anything, mock.MatchedBy(func(rec *ScoreRecord) bool {
					return rec.LevelID == event.RandomLevelID && rec.Seed != nil && *rec.Seed == "seed42"
				})).Return(nil)
			},
			expected: &SyncResponse{AcceptedCount: 1, RejectedCount: 0},
		},
		{
			name:   "storage error fails whole request",
			ctx:    authCtx(""),
			events: []event.Event{NewTestLevelEvent()},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
				scores.On("InsertScore", mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			expectAnyErr: true,
		},
		{
			name:   "nickname backfilled from token when unset",
			ctx:    authCtx("токен-ник"),
			events: []event.Event{},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUser, nil)
				users.On("BackfillNickname", mock.Anything, "u-1", "токен-ник").Return(nil)
			},
			expected: &SyncResponse{AcceptedCount: 0, RejectedCount: 0},
		},
		{
			name:   "nickname not backfilled when already set",
			ctx:    authCtx("токен-ник"),
			events: []event.Event{},
			setupMocks: func(users *MockUserRepository, scores *MockScoreRepository) {
				users.On("GetOrCreateByAuthSubject", mock.Anything, "sub-1").Return(appUserWithNick, nil)
			},
			expected: &SyncResponse{AcceptedCount: 0, RejectedCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			users := new(MockUserRepository)
			scores := new(MockScoreRepository)
			tt.setupMocks(users, scores)
			service := NewService(users, scores, slog.Default())

			// Act
			resp, err := service.ProcessBatch(tt.ctx, SyncRequest{Events: tt.events})

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			if tt.expectAnyErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resp)
			assert.Equal(t, len(tt.events), resp.AcceptedCount+resp.RejectedCount)
			users.AssertExpectations(t)
			scores.AssertExpectations(t)
		})
	}
}

// NewTestLevelEvent returns a valid level completion used across cases.
func NewTestLevelEvent() event.Event {
	return event.NewLevelCompleted("level_1", 9500, 5, 3000)
}
