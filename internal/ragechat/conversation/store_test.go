package conversation

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
)

func sampleMessages(n int) []ragechat.Message {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var out []ragechat.Message
	for i := 0; i < n; i++ {
		sender := ragechat.SenderUser
		if i%2 == 1 {
			sender = ragechat.SenderAI
		}
		out = append(out, ragechat.NewMessage(fmt.Sprintf("message %d <b>\"'&", i), sender, base.Add(time.Duration(i)*time.Minute)))
	}
	return out
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 25} {
		t.Run(fmt.Sprintf("%d messages", n), func(t *testing.T) {
			in := sampleMessages(n)
			data, err := Marshal(in)
			require.NoError(t, err)

			out, err := Unmarshal(data)
			require.NoError(t, err)
			if n == 0 {
				assert.Empty(t, out)
				return
			}
			assert.Equal(t, in, out)
		})
	}
}

func TestMarshal_WireFormat(t *testing.T) {
	data, err := Marshal([]ragechat.Message{{ID: 1700000000000, Content: "hi", Sender: ragechat.SenderAI, Timestamp: "09:30"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1700000000000,"content":"hi","sender":"ai","timestamp":"09:30"}]`, string(data))

	empty, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestStore_SaveLoad(t *testing.T) {
	kv := storage.NewMemoryStorage()
	s := NewStore(kv, nil)
	for _, m := range sampleMessages(4) {
		s.Append(m)
	}
	require.NoError(t, s.Save())

	reloaded := NewStore(kv, nil)
	got, err := reloaded.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleMessages(4), got)
	assert.Equal(t, 4, reloaded.Len())
}

func TestStore_AppendKeepsOrderAndDuplicates(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage(), nil)
	m := ragechat.Message{ID: 5, Content: "same", Sender: ragechat.SenderUser}
	s.Append(m)
	s.Append(m)
	s.Append(ragechat.Message{ID: 1, Content: "older id", Sender: ragechat.SenderAI})

	got := s.Messages()
	require.Len(t, got, 3)
	assert.Equal(t, "older id", got[2].Content, "arrival order, not id order")

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, int64(1), last.ID)
}

func TestStore_MessagesIsACopy(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage(), nil)
	s.Append(ragechat.Message{Content: "a"})

	got := s.Messages()
	got[0].Content = "changed"

	assert.Equal(t, "a", s.Messages()[0].Content)
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(storage.NewMemoryStorage(), nil)
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, s.Len())

	_, ok := s.Last()
	assert.False(t, ok)
}

func TestStore_LoadMalformedFallsBackToEmpty(t *testing.T) {
	kv := storage.NewMemoryStorage()
	require.NoError(t, kv.Set(storage.HistoryKey, "{not json"))

	var logs bytes.Buffer
	s := NewStore(kv, slog.New(slog.NewTextHandler(&logs, nil)))
	s.Append(ragechat.Message{Content: "stale"})

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, s.Len())
	assert.Contains(t, logs.String(), "discarding unreadable chat history")
}

func TestStore_ClearRemovesHistoryOnly(t *testing.T) {
	kv := storage.NewMemoryStorage()
	require.NoError(t, kv.Set(storage.ThemeKey, "dark"))

	s := NewStore(kv, nil)
	s.Append(ragechat.Message{Content: "a"})
	require.NoError(t, s.Save())

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())

	_, ok, err := kv.Get(storage.HistoryKey)
	require.NoError(t, err)
	assert.False(t, ok)

	theme, ok, err := kv.Get(storage.ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}
