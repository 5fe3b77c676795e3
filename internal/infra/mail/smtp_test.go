package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

func TestSMTPSender_BuildsMessage(t *testing.T) {
	var got *gomail.Msg
	s := newSMTPSender("site@dohapopular.com", time.Second, func(ctx context.Context, m *gomail.Msg) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		got = m
		return nil
	}, zap.NewNop())

	err := s.Send(context.Background(), Message{To: "admin@dohapopular.com", Subject: "New Inquiry", HTML: "<p>hi</p>"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"New Inquiry"}, got.GetGenHeader(gomail.HeaderSubject))
	to := got.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "admin@dohapopular.com")
}

func TestSMTPSender_RejectsBadAddress(t *testing.T) {
	s := newSMTPSender("site@dohapopular.com", 0, func(context.Context, *gomail.Msg) error {
		t.Fatal("deliver must not be called")
		return nil
	}, zap.NewNop())
	assert.Error(t, s.Send(context.Background(), Message{To: "not an address"}))
}

func TestSMTPSender_BreakerOpensAfterFailures(t *testing.T) {
	calls := 0
	s := newSMTPSender("site@dohapopular.com", 0, func(context.Context, *gomail.Msg) error {
		calls++
		return errors.New("dial tcp: connection refused")
	}, zap.NewNop())

	msg := Message{To: "admin@dohapopular.com", Subject: "s", HTML: "b"}
	for i := 0; i < 3; i++ {
		assert.Error(t, s.Send(context.Background(), msg))
	}
	err := s.Send(context.Background(), msg)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, calls)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, queue string, body any) error {
	args := m.Called(ctx, queue, body)
	return args.Error(0)
}

func TestQueueSender_Publishes(t *testing.T) {
	pub := &MockPublisher{}
	msg := Message{To: "a@x.com", Subject: "s", HTML: "b"}
	pub.On("PublishJSON", mock.Anything, "dohapopular.mail", msg).Return(nil)

	require.NoError(t, NewQueueSender(pub, "dohapopular.mail").Send(context.Background(), msg))
	pub.AssertExpectations(t)
}

func TestNopSender(t *testing.T) {
	assert.NoError(t, NopSender{}.Send(context.Background(), Message{}))
}
