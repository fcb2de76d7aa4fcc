package monitoring

import (
	"testing"

	"luminax_client/internal/model"
	"luminax_client/internal/state"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStore(t *testing.T) {
	store := state.NewStore(state.Initial())
	stop := ObserveStore(store)
	defer stop()

	before := testutil.ToFloat64(ActionsTotal.WithLabelValues("ADD_TO_CART"))
	store.Dispatch(state.AddToCart{Course: model.Course{ID: "1"}})
	store.Dispatch(state.AddToCart{Course: model.Course{ID: "2"}})

	assert.Equal(t, before+2, testutil.ToFloat64(ActionsTotal.WithLabelValues("ADD_TO_CART")))
	assert.Equal(t, 2.0, testutil.ToFloat64(CartItems))

	store.Dispatch(state.ClearCart{})
	assert.Equal(t, 0.0, testutil.ToFloat64(CartItems))
}
