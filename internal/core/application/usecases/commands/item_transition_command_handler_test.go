package commands_test

import (
	"errors"
	"testing"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func itemCommand(t *testing.T, o *order.Order, itemID kernel.UUID, action commands.ItemAction) commands.ItemTransitionCommand {
	t.Helper()
	cmd, err := commands.NewItemTransitionCommand(o.HubID(), itemID, action, "cook-3")
	require.NoError(t, err)
	return cmd
}

func TestItemTransitionCommandHandler_Handle_AcceptAndAutoReady(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	o := newOrderWithItems(kernel.NewUUID(), 2)
	items := o.Items()

	f.expectUoW(true)
	f.expectUoW(true)
	f.expectUoW(true)
	f.orderRepo.On("GetForUpdate", mock.Anything, o.HubID(), o.ID()).Return(o, nil).Once()
	f.orderRepo.On("GetByItemForUpdate", mock.Anything, o.HubID(), items[0].ID()).Return(o, nil).Once()
	f.orderRepo.On("GetByItemForUpdate", mock.Anything, o.HubID(), items[1].ID()).Return(o, nil).Once()
	f.orderRepo.On("Update", mock.Anything, o).Return(nil).Times(3)
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Times(4)

	accept := commands.NewOrderTransitionCommandHandler(f.factory)
	status, err := accept.Handle(ctx, transition(t, o, commands.ActionAccept, ""))
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, status)

	h := commands.NewItemTransitionCommandHandler(f.factory)

	result, err := h.Handle(ctx, itemCommand(t, o, items[0].ID(), commands.ItemActionReady))
	require.NoError(t, err)
	assert.Equal(t, order.ItemReady, result.ItemStatus)
	assert.Equal(t, order.Preparing, result.OrderStatus)

	result, err = h.Handle(ctx, itemCommand(t, o, items[1].ID(), commands.ItemActionReady))
	require.NoError(t, err)
	assert.Equal(t, order.Ready, result.OrderStatus)
	assert.NotNil(t, o.ReadyAt())

	assert.Equal(t,
		[]audit.Action{audit.Accepted, audit.ItemReady, audit.ItemReady, audit.Completed},
		f.auditRepo.Actions())
	require.NotNil(t, f.auditRepo.entries[1].ItemID())
	assert.True(t, f.auditRepo.entries[1].ItemID().IsEqual(items[0].ID()))
	f.assertExpectations(t)
}

func TestItemTransitionCommandHandler_Handle_ReadyTwiceIsIdempotent(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	o := newOrderWithItems(kernel.NewUUID(), 2)
	itemID := o.Items()[0].ID()

	f.expectUoW(true)
	f.expectUoW(false)
	f.orderRepo.On("GetByItemForUpdate", mock.Anything, o.HubID(), itemID).Return(o, nil).Twice()
	f.orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewItemTransitionCommandHandler(f.factory)

	_, err := h.Handle(ctx, itemCommand(t, o, itemID, commands.ItemActionReady))
	require.NoError(t, err)

	result, err := h.Handle(ctx, itemCommand(t, o, itemID, commands.ItemActionReady))
	require.NoError(t, err)
	assert.Equal(t, order.ItemReady, result.ItemStatus)
	assert.Equal(t, order.Pending, result.OrderStatus)
	assert.Len(t, f.auditRepo.entries, 1)
	f.assertExpectations(t)
}

func TestItemTransitionCommandHandler_Handle_Preparing(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	o := newOrderWithItems(kernel.NewUUID(), 1)
	itemID := o.Items()[0].ID()

	f.expectUoW(true)
	f.orderRepo.On("GetByItemForUpdate", mock.Anything, o.HubID(), itemID).Return(o, nil).Once()
	f.orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()

	h := commands.NewItemTransitionCommandHandler(f.factory)
	result, err := h.Handle(ctx, itemCommand(t, o, itemID, commands.ItemActionPreparing))

	require.NoError(t, err)
	assert.Equal(t, order.ItemPreparing, result.ItemStatus)
	assert.Equal(t, order.Pending, result.OrderStatus)
	assert.Equal(t, []audit.Action{audit.ItemStarted}, f.auditRepo.Actions())
	f.assertExpectations(t)
}

func TestItemTransitionCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	o := newOrderWithItems(kernel.NewUUID(), 1)
	require.NoError(t, o.Cancel("", testTime))
	itemID := o.Items()[0].ID()

	f.expectUoW(false)
	f.orderRepo.On("GetByItemForUpdate", mock.Anything, o.HubID(), itemID).Return(o, nil).Once()

	h := commands.NewItemTransitionCommandHandler(f.factory)
	_, err := h.Handle(ctx, itemCommand(t, o, itemID, commands.ItemActionReady))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTransitionIsInvalid))
	f.assertExpectations(t)
}

func TestNewItemTransitionCommand_InvalidAction(t *testing.T) {
	_, err := commands.NewItemTransitionCommand(kernel.NewUUID(), kernel.NewUUID(), commands.ItemAction("served"), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
}
