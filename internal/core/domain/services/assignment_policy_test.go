package services_test

import (
	"testing"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	amount, err := kernel.NewMoneyFromString("75.00")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Jane Doe", "1 Main St", amount)
	require.NoError(t, err)
	return o
}

func newProfile(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), kernel.NewUUID(), agent.VehicleBike, "N1", "L1")
	require.NoError(t, err)
	return a
}

func TestAssignmentPolicy_Assign_PaidPendingOrder(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	o := newOrder(t)
	require.NoError(t, o.MarkPaid())
	profile := newProfile(t)

	deliveryID := kernel.NewUUID()
	assignment, err := policy.Assign(deliveryID, o, profile)

	require.NoError(t, err)
	assert.True(t, assignment.ID().IsEqual(deliveryID))
	assert.True(t, assignment.OrderID().IsEqual(o.ID()))
	assert.True(t, assignment.AgentID().IsEqual(profile.ID()))
	assert.Equal(t, delivery.StatusAssigned, assignment.Status())
	assert.Equal(t, order.StatusInTransit, o.Status())
}

func TestAssignmentPolicy_Assign_UnpaidOrderRejected(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	o := newOrder(t)
	profile := newProfile(t)

	_, err := policy.Assign(kernel.NewUUID(), o, profile)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusPending, o.Status(), "rejected assignment must not touch the order")
}

func TestAssignmentPolicy_Assign_TerminalOrderRejected(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	profile := newProfile(t)

	for _, target := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		o := newOrder(t)
		require.NoError(t, o.MarkPaid())
		o.ForceInTransit()
		require.NoError(t, o.ChangeStatus(target))

		_, err := policy.Assign(kernel.NewUUID(), o, profile)
		require.ErrorIs(t, err, errs.ErrInvalidTransition, "status %s", target)
	}
}

func TestAssignmentPolicy_Assign_RefundedOrderRejected(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	o := newOrder(t)
	require.NoError(t, o.MarkPaid())
	require.NoError(t, o.Refund())
	profile := newProfile(t)

	_, err := policy.Assign(kernel.NewUUID(), o, profile)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAssignmentPolicy_Assign_UnavailableAgentRejected(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	o := newOrder(t)
	require.NoError(t, o.MarkPaid())
	profile := newProfile(t)
	profile.SetAvailability(false)

	_, err := policy.Assign(kernel.NewUUID(), o, profile)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), services.ErrAgentUnavailable.Error())
	assert.Equal(t, order.StatusPending, o.Status())
}

func TestAssignmentPolicy_Check_DoesNotMutate(t *testing.T) {
	policy := services.NewAssignmentPolicy()
	o := newOrder(t)
	require.NoError(t, o.MarkPaid())
	profile := newProfile(t)

	require.NoError(t, policy.Check(o, profile))
	assert.Equal(t, order.StatusPending, o.Status())
}
