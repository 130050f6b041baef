package store_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/chat-client/internal/domain/models"
	"github.com/unifiedui/chat-client/internal/mocks"
	"github.com/unifiedui/chat-client/internal/services/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	s := store.NewStore(nil)

	s.Append(models.NewUserMessage("hello"))
	s.Append(models.NewErrorReply())
	s.Append(models.NewUserMessage("world"))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "hello", all[0].Text)
	assert.Equal(t, models.ErrorReplyText, all[1].Text)
	assert.Equal(t, "world", all[2].Text)
}

func TestStore_IDsStrictlyIncreaseWithFrozenClock(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	s := store.NewStore(&store.Config{Clock: fixedClock(now)})

	first := s.Append(models.NewUserMessage("a"))
	second := s.Append(models.NewUserMessage("b"))
	third := s.Append(models.NewUserMessage("c"))

	assert.Equal(t, now.UnixMilli(), first.ID)
	assert.Equal(t, first.ID+1, second.ID)
	assert.Equal(t, second.ID+1, third.ID)
}

func TestStore_AppendAssignsIDToCaller(t *testing.T) {
	s := store.NewStore(nil)
	msg := models.NewUserMessage("a")

	stored := s.Append(msg)

	assert.NotZero(t, stored.ID)
	assert.Equal(t, stored.ID, msg.ID)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := store.NewStore(nil)
	s.Append(models.NewUserMessage("original"))

	snapshot := s.All()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "original", s.All()[0].Text)
}

func TestStore_SubscribeReceivesAppends(t *testing.T) {
	s := store.NewStore(nil)
	s.Append(models.NewUserMessage("before"))

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Append(models.NewUserMessage("after"))

	select {
	case msg := <-ch:
		assert.Equal(t, "after", msg.Text)
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

func TestStore_UnsubscribeClosesChannel(t *testing.T) {
	s := store.NewStore(nil)
	ch, cancel := s.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	s.Append(models.NewUserMessage("no panic"))
}

func TestStore_SlowSubscriberIsDropped(t *testing.T) {
	s := store.NewStore(&store.Config{SubscriberBuffer: 1})
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Append(models.NewUserMessage("one"))
	s.Append(models.NewUserMessage("two"))

	first, open := <-ch
	require.True(t, open)
	assert.Equal(t, "one", first.Text)
	_, open = <-ch
	assert.False(t, open)
	assert.Equal(t, 2, s.Len())
}

func TestStore_PublishesToNotifier(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	notifier.On("Publish", mock.Anything, "session_1", mock.MatchedBy(func(m *models.Message) bool {
		return m.Text == "hello" && m.ID != 0
	})).Return(nil).Once()

	s := store.NewStore(&store.Config{SessionID: "session_1", Notifier: notifier})
	s.Append(models.NewUserMessage("hello"))

	notifier.AssertExpectations(t)
}

func TestStore_NotifierFailureDoesNotFailAppend(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	notifier.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	s := store.NewStore(&store.Config{SessionID: "session_1", Notifier: notifier})
	stored := s.Append(models.NewUserMessage("hello"))

	assert.NotZero(t, stored.ID)
	assert.Equal(t, 1, s.Len())
	notifier.AssertExpectations(t)
}

func TestStore_ConcurrentAppendsHaveUniqueIDs(t *testing.T) {
	s := store.NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append(models.NewUserMessage("x"))
		}()
	}
	wg.Wait()

	all := s.All()
	require.Len(t, all, 50)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID)
	}
}
