package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
)

type pingQuery struct{ Value string }

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	err := mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return "pong:" + request.(*pingQuery).Value, nil
		},
	))
	require.NoError(t, err)

	// Act
	resp, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestMediator_RejectsUnknownAndDuplicateTypes(t *testing.T) {
	m := mediator.NewMediator()
	handler := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, nil
	})
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, handler))

	assert.Error(t, mediator.RegisterHandler[*pingQuery](m, handler))
	_, err := m.Send(context.Background(), pingQuery{})
	assert.ErrorContains(t, err, "no handler registered")
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewaresWrapInRegistrationOrder(t *testing.T) {
	m := mediator.NewMediator()
	var calls []string
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			calls = append(calls, "handler")
			return nil, nil
		},
	)))
	for _, name := range []string{"outer", "inner"} {
		name := name
		m.Use(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name)
			return next(ctx, request)
		})
	}

	_, err := m.Send(context.Background(), &pingQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}
