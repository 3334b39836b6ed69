package events

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e1 := New(BookAdded, map[string]string{"title": "1984"})
	e2 := New(BookAdded, nil)

	assert.NotEqual(t, uuid.Nil, e1.ID)
	assert.NotEqual(t, e1.ID, e2.ID)
	assert.Equal(t, BookAdded, e1.Type)
	assert.False(t, e1.Timestamp.IsZero())
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf))

	e := New(UserRegistered, map[string]string{"username": "JohnDoe"})
	require.NoError(t, p.Publish(e))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "events", line["component"])
	assert.Equal(t, UserRegistered, line["type"])
	assert.Equal(t, e.ID.String(), line["event_id"])
	assert.Equal(t, map[string]any{"username": "JohnDoe"}, line["payload"])
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(New(BookRemoved, nil)))
}
