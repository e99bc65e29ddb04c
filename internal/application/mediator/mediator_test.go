package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/application/mediator"
)

type pingRequest struct{ value int }

type pongRequest struct{}

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	err := mediator.RegisterHandler[pingRequest](m, mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return request.(pingRequest).value * 2, nil
	}))
	require.NoError(t, err)

	// Act
	resp, err := m.Send(context.Background(), pingRequest{value: 21})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestMediator_UnknownAndNilRequests(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), pongRequest{})
	assert.Error(t, err)

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := mediator.NewMediator()
	handler := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, nil
	})

	require.NoError(t, mediator.RegisterHandler[pongRequest](m, handler))
	assert.Error(t, mediator.RegisterHandler[pongRequest](m, handler))
	assert.Error(t, m.Register(nil, handler))
	assert.Error(t, mediator.RegisterHandler[pingRequest](m, nil))
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	var calls []string
	require.NoError(t, mediator.RegisterHandler[pongRequest](m, mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		calls = append(calls, "handler")
		return "pong", nil
	})))
	for _, name := range []string{"outer", "inner"} {
		name := name
		m.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name)
			return next(ctx, request)
		})
	}

	// Act
	resp, err := m.Send(context.Background(), pongRequest{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong", resp)
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}
