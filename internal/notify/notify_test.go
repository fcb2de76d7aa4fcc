package notify

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFeed_DrainAndCapacity(t *testing.T) {
	f := NewFeed(2)
	f.Success("one")
	f.Error("two")
	f.Success("three")

	pending := f.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "two", pending[0].Message)
	assert.Equal(t, KindError, pending[0].Kind)

	drained := f.Drain()
	assert.Len(t, drained, 2)
	assert.Empty(t, f.Drain())
}

func TestFanoutAndCounted(t *testing.T) {
	a, b := NewFeed(0), NewFeed(0)
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_notifications_total"}, []string{"kind"})
	n := Counted(Fanout(a, b), counter)

	n.Success("added")
	n.Error("nope")
	n.Error("nope again")

	assert.Len(t, a.Drain(), 3)
	assert.Len(t, b.Drain(), 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues("error")))
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))
	n.Error("Course is already in your cart")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].ContextMap()["kind"])
}
