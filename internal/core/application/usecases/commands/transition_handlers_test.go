package commands_test

import (
	"testing"
	"time"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transitionUoW struct {
	orderRepo      *MockOrderRepository
	restaurantRepo *MockRestaurantRepository
	uow            *MockUoW
	factory        *MockOrderUoWFactory
}

func newTransitionUoW(t *testing.T) transitionUoW {
	t.Helper()
	f := transitionUoW{
		orderRepo:      new(MockOrderRepository),
		restaurantRepo: new(MockRestaurantRepository),
		uow:            new(MockUoW),
		factory:        new(MockOrderUoWFactory),
	}
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("RestaurantRepository").Return(f.restaurantRepo)
	f.factory.On("Create").Return(f.uow)
	return f
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	o := pendingOrder(t, kernel.NewUUID(), rest.ID())

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)
	f.orderRepo.On("MarkStarted", ctx, o.ID(), mock.AnythingOfType("time.Time")).Return(true, nil)

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewConfirmOrderCommandHandler(f.factory)
	confirmed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusInProcess, confirmed.Status())
	require.NotNil(t, confirmed.StartedAt())

	f.orderRepo.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyStarted(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	started := orderAtStage(t, kernel.NewUUID(), rest.ID(), timePtr(time.Now().UTC()), nil, nil)

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, started.ID()).Return(started, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewConfirmOrderCommand(started.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewConfirmOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	f.orderRepo.AssertNotCalled(t, "MarkStarted", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	o := pendingOrder(t, kernel.NewUUID(), rest.ID())

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)
	// Another request set startedAt between our read and the update.
	f.orderRepo.On("MarkStarted", ctx, o.ID(), mock.AnythingOfType("time.Time")).Return(false, nil)

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewConfirmOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestConfirmOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()

	rest := mustRestaurant(t, kernel.NewUUID(), 2.5)
	o := pendingOrder(t, kernel.NewUUID(), rest.ID())
	stranger := kernel.NewUUID()

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), stranger)
	require.NoError(t, err)

	h := commands.NewConfirmOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotPermitted)
}

func TestConfirmOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID))

	cmd, err := commands.NewConfirmOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewConfirmOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSendOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	started := orderAtStage(t, kernel.NewUUID(), rest.ID(), timePtr(time.Now().UTC()), nil, nil)

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, started.ID()).Return(started, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)
	f.orderRepo.On("MarkSent", ctx, started.ID(), mock.AnythingOfType("time.Time")).Return(true, nil)

	cmd, err := commands.NewSendOrderCommand(started.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewSendOrderCommandHandler(f.factory)
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusSent, sent.Status())
	require.NotNil(t, sent.SentAt())
}

func TestSendOrderCommandHandler_Handle_NotStartedYet(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	o := pendingOrder(t, kernel.NewUUID(), rest.ID())

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewSendOrderCommand(o.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewSendOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestSendOrderCommandHandler_Handle_AlreadySent(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	now := time.Now().UTC()

	rest := mustRestaurant(t, ownerID, 2.5)
	sent := orderAtStage(t, kernel.NewUUID(), rest.ID(), timePtr(now.Add(-time.Minute)), timePtr(now), nil)

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, sent.ID()).Return(sent, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewSendOrderCommand(sent.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewSendOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	now := time.Now().UTC()

	rest := mustRestaurant(t, ownerID, 2.5)
	sent := orderAtStage(t, kernel.NewUUID(), rest.ID(), timePtr(now.Add(-time.Minute)), timePtr(now), nil)

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, sent.ID()).Return(sent, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)
	f.orderRepo.On("MarkDelivered", ctx, sent.ID(), mock.AnythingOfType("time.Time")).Return(true, nil)

	cmd, err := commands.NewDeliverOrderCommand(sent.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewDeliverOrderCommandHandler(f.factory)
	delivered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusDelivered, delivered.Status())
	require.NotNil(t, delivered.DeliveredAt())
}

func TestDeliverOrderCommandHandler_Handle_NotSentYet(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()

	rest := mustRestaurant(t, ownerID, 2.5)
	started := orderAtStage(t, kernel.NewUUID(), rest.ID(), timePtr(time.Now().UTC()), nil, nil)

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, started.ID()).Return(started, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewDeliverOrderCommand(started.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewDeliverOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestDeliverOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	now := time.Now().UTC()

	rest := mustRestaurant(t, ownerID, 2.5)
	delivered := orderAtStage(t, kernel.NewUUID(), rest.ID(),
		timePtr(now.Add(-2*time.Minute)), timePtr(now.Add(-time.Minute)), timePtr(now))

	f := newTransitionUoW(t)
	f.orderRepo.On("Get", ctx, delivered.ID()).Return(delivered, nil)
	f.restaurantRepo.On("Get", ctx, rest.ID()).Return(rest, nil)

	cmd, err := commands.NewDeliverOrderCommand(delivered.ID(), ownerID)
	require.NoError(t, err)

	h := commands.NewDeliverOrderCommandHandler(f.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}
