package runtime_test

import (
	"sync"
	"testing"

	"github.com/aretw0/dfasim/internal/runtime"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var mu sync.Mutex
	var events []*domain.EvaluationEvent

	hooks := domain.LifecycleHooks{
		OnEvaluate: func(e *domain.EvaluationEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		},
	}

	engine, err := runtime.NewEngine(endsInOne(), runtime.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	engine.EvaluateString("101", false)
	engine.EvaluateString("12", true)

	require.Len(t, events, 2)

	assert.Equal(t, domain.EventEvaluate, events[0].Type)
	assert.Equal(t, "ends-in-1", events[0].Definition)
	assert.Equal(t, 3, events[0].Symbols)
	assert.Equal(t, domain.Accepted, events[0].Run.Result)
	assert.False(t, events[0].Traced)

	assert.Equal(t, domain.Rejected, events[1].Run.Result)
	assert.Equal(t, domain.ReasonUnknownSymbol, events[1].Run.Reason)
	assert.True(t, events[1].Traced)
}

func TestEngine_NoHooksIsFine(t *testing.T) {
	engine, err := runtime.NewEngine(endsInOne(), runtime.WithLifecycleHooks(domain.LifecycleHooks{}))
	require.NoError(t, err)
	assert.Equal(t, domain.Accepted, engine.EvaluateString("1", false))
}
