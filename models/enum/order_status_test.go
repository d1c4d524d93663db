package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofalre.io/storefront/models/enum"
)

func TestOrderStatusClosedSet(t *testing.T) {
	want := []enum.OrderStatus{
		"pending", "processing", "shipped", "confirmed", "failed", "cancelled", "completed",
	}
	assert.Equal(t, want, enum.OrderStatuses())
}

func TestOrderStatusValidate(t *testing.T) {
	for _, s := range enum.OrderStatuses() {
		require.NoError(t, s.Validate(), "status %s", s)
	}

	err := enum.OrderStatus("teleported").Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleported")
}
