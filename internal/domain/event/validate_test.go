package event

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pixelz/internal/domain/score"
)

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name        string
		event       Event
		expectedErr error
	}{
		{
			name:  "valid level completed",
			event: NewLevelCompleted("level_1", 9500, 5, 3000),
		},
		{
			name:  "valid random level played",
			event: NewRandomLevelPlayed("abc123", 8000, 10, 5000),
		},
		{
			name:  "valid nickname",
			event: NewSetNickname("Игрок"),
		},
		{
			name:  "valid challenge",
			event: NewCreateChallenge("seed42", nil),
		},
		{
			name: "unknown type fails closed",
			event: Event{
				Type:    Type("ACHIEVEMENT_UNLOCKED"),
				Payload: json.RawMessage(`{}`),
			},
			expectedErr: ErrUnknownType,
		},
		{
			name: "empty type fails closed",
			event: Event{
				Payload: json.RawMessage(`{}`),
			},
			expectedErr: ErrUnknownType,
		},
		{
			name: "malformed payload",
			event: Event{
				Type:    TypeLevelCompleted,
				Payload: json.RawMessage(`{not json`),
			},
			expectedErr: ErrMalformedPayload,
		},
		{
			name: "empty level id",
			event: Event{
				Type:    TypeLevelCompleted,
				Payload: json.RawMessage(`{"levelId":"","score":100,"moves":1,"timeMs":1}`),
			},
			expectedErr: ErrInvalidPayload,
		},
		{
			name:        "score above max",
			event:       NewLevelCompleted("level_1", score.MaxScore+1, 0, 0),
			expectedErr: ErrScoreOutOfBounds,
		},
		{
			name:        "negative moves",
			event:       NewLevelCompleted("level_1", 100, -1, 0),
			expectedErr: ErrScoreOutOfBounds,
		},
		{
			name:        "random level without seed",
			event:       NewRandomLevelPlayed("", 100, 1, 1),
			expectedErr: ErrInvalidPayload,
		},
		{
			name:        "random level score out of bounds",
			event:       NewRandomLevelPlayed("seed", -5, 1, 1),
			expectedErr: ErrScoreOutOfBounds,
		},
		{
			name:        "empty nickname",
			event:       NewSetNickname(""),
			expectedErr: ErrInvalidNickname,
		},
		{
			name:  "nickname at max length",
			event: NewSetNickname(strings.Repeat("я", score.NicknameMaxLength)),
		},
		{
			name:        "nickname over max length",
			event:       NewSetNickname(strings.Repeat("я", score.NicknameMaxLength+1)),
			expectedErr: ErrInvalidNickname,
		},
		{
			name:        "challenge without seed",
			event:       NewCreateChallenge("", nil),
			expectedErr: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLevelCompleted_roundtrip(t *testing.T) {
	// Arrange
	e := NewLevelCompleted("level_2", 7777, 12, 4500)

	// Act
	p, err := e.LevelCompleted()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "level_2", p.LevelID)
	assert.Equal(t, int64(7777), p.Score)
	assert.Equal(t, int64(12), p.Moves)
	assert.Equal(t, int64(4500), p.TimeMs)
	assert.NotNil(t, e.ClientTimestamp)
}

func TestEvent_jsonShape(t *testing.T) {
	// Поле clientTimestamp опускается, когда отсутствует.
	raw, err := json.Marshal(Event{
		Type:    TypeSetNickname,
		Payload: json.RawMessage(`{"nickname":"x"}`),
	})

	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "clientTimestamp")
	assert.Contains(t, string(raw), `"type":"SET_NICKNAME"`)
}
