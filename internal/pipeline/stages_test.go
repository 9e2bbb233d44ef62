package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghsearch/internal/domain"
)

func input(text string) domain.RawEvent { return domain.RawEvent{Kind: domain.EventInput, Text: text} }
func focus(text string) domain.RawEvent { return domain.RawEvent{Kind: domain.EventFocus, Text: text} }
func blur(text string) domain.RawEvent  { return domain.RawEvent{Kind: domain.EventBlur, Text: text} }

func TestDebouncerOnlyLatestTagSettles(t *testing.T) {
	d := NewDebouncer(true)

	first := d.Observe(input("abc"))
	second := d.Observe(input("abcd"))

	_, ok := d.Settle(first)
	assert.False(t, ok, "stale timer must not flush")

	ev, ok := d.Settle(second)
	require.True(t, ok)
	assert.Equal(t, "abcd", ev.Text)

	_, ok = d.Settle(second)
	assert.False(t, ok, "a settled event is emitted once")
}

func TestDebouncerSuppressesConsecutiveDuplicates(t *testing.T) {
	d := NewDebouncer(true)

	_, ok := d.Settle(d.Observe(input("react")))
	require.True(t, ok)

	_, ok = d.Settle(d.Observe(input("react")))
	assert.False(t, ok)

	// a different kind with the same text is a different event
	ev, ok := d.Settle(d.Observe(blur("react")))
	require.True(t, ok)
	assert.Equal(t, domain.EventBlur, ev.Kind)
}

func TestDebouncerFiltersFocusAfterDedup(t *testing.T) {
	d := NewDebouncer(true)

	_, ok := d.Settle(d.Observe(input("go")))
	require.True(t, ok)

	_, ok = d.Settle(d.Observe(focus("go")))
	assert.False(t, ok, "focus never reaches the dispatcher")

	// the focus event became the previous emitted key, so the same input passes again
	_, ok = d.Settle(d.Observe(input("go")))
	assert.True(t, ok)
}

func TestDebouncerFocusSupersedesPendingEvent(t *testing.T) {
	for _, first := range []domain.RawEvent{input("a"), blur("a")} {
		t.Run(first.Kind.String(), func(t *testing.T) {
			d := NewDebouncer(true)

			pending := d.Observe(first)
			latest := d.Observe(focus("a"))

			_, ok := d.Settle(pending)
			assert.False(t, ok, "the earlier timer is stale once focus arrives")

			_, ok = d.Settle(latest)
			assert.False(t, ok, "focus itself is filtered")
		})
	}
}

func TestDebouncerBlurDisabled(t *testing.T) {
	d := NewDebouncer(false)

	_, ok := d.Settle(d.Observe(blur("react")))
	assert.False(t, ok)

	_, ok = d.Settle(d.Observe(input("react")))
	assert.True(t, ok)
}

func TestDebouncerSettleWithoutEvents(t *testing.T) {
	d := NewDebouncer(true)
	_, ok := d.Settle(0)
	assert.False(t, ok)
}

func TestDispatcherLatestWins(t *testing.T) {
	d := NewDispatcher()

	state, gen := d.State()
	assert.Equal(t, StateIdle, state)
	assert.Equal(t, uint64(0), gen)

	g1, ctx1 := d.Dispatch(context.Background())
	g2, ctx2 := d.Dispatch(context.Background())

	assert.Equal(t, uint64(1), g1)
	assert.Equal(t, uint64(2), g2)
	assert.ErrorIs(t, ctx1.Err(), context.Canceled, "superseded fetch is canceled")
	assert.NoError(t, ctx2.Err())

	state, gen = d.State()
	assert.Equal(t, StateFetching, state)
	assert.Equal(t, uint64(2), gen)

	assert.False(t, d.Settle(g1))
	assert.True(t, d.Settle(g2))
	assert.False(t, d.Settle(g2), "an accepted generation cannot settle twice")

	state, _ = d.State()
	assert.Equal(t, StateIdle, state)
}

func TestDispatcherAbandon(t *testing.T) {
	d := NewDispatcher()

	gen, ctx := d.Dispatch(context.Background())
	d.Abandon()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, d.Settle(gen))
	state, _ := d.State()
	assert.Equal(t, StateIdle, state)

	// abandoning while idle is a no-op
	d.Abandon()
	next, _ := d.Dispatch(context.Background())
	assert.Greater(t, next, gen)
}

func TestGuard(t *testing.T) {
	ctx := context.Background()
	want := domain.SearchResult{Total: 1, Items: []domain.RepositoryItem{{Name: "react"}}}

	t.Run("success", func(t *testing.T) {
		out := Guard(ctx, SearcherFunc(func(context.Context, domain.Query) (domain.SearchResult, error) {
			return want, nil
		}), 4, "react")
		require.True(t, out.Succeeded())
		assert.Equal(t, want, out.Result)
		assert.Equal(t, uint64(4), out.Generation)
		assert.Equal(t, domain.Query("react"), out.Query)
	})

	t.Run("error", func(t *testing.T) {
		cause := &domain.HTTPStatusError{StatusCode: 500}
		out := Guard(ctx, SearcherFunc(func(context.Context, domain.Query) (domain.SearchResult, error) {
			return domain.SearchResult{}, cause
		}), 5, "react")
		require.False(t, out.Succeeded())
		assert.ErrorIs(t, out.Err, domain.ErrHTTPStatus)
	})

	t.Run("panic", func(t *testing.T) {
		out := Guard(ctx, SearcherFunc(func(context.Context, domain.Query) (domain.SearchResult, error) {
			panic("boom")
		}), 6, "react")
		require.False(t, out.Succeeded())
		assert.Contains(t, out.Err.Error(), "boom")
		assert.Equal(t, uint64(6), out.Generation)
	})
}

func TestSinkRendersSuccessOnly(t *testing.T) {
	var buf bytes.Buffer
	var rendered []domain.SearchResult
	var labels []domain.Query
	s := NewSink(RenderFunc(func(q domain.Query, r domain.SearchResult) {
		labels = append(labels, q)
		rendered = append(rendered, r)
	}), zerolog.New(&buf))

	s.Consume(domain.Failure(1, "react", errors.New("status 500")))
	assert.Empty(t, rendered)
	assert.Contains(t, buf.String(), "search failed")
	assert.Contains(t, buf.String(), "status 500")

	s.Consume(domain.Success(2, "react", domain.SearchResult{Total: 7}))
	require.Len(t, rendered, 1)
	assert.Equal(t, 7, rendered[0].Total)
	assert.Equal(t, []domain.Query{"react"}, labels)
}

func TestSinkRecoversRendererPanic(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(RenderFunc(func(domain.Query, domain.SearchResult) { panic("render") }), zerolog.New(&buf))

	assert.NotPanics(t, func() {
		s.Consume(domain.Success(1, "react", domain.SearchResult{}))
	})
	assert.Contains(t, buf.String(), "renderer panic")
}

func TestSourceKeepsOrder(t *testing.T) {
	src := NewSource(4)
	src.Input("a")
	src.Focus("a")
	src.Blur("ab")
	src.Emit(input("abc"))

	want := []domain.RawEvent{input("a"), focus("a"), blur("ab"), input("abc")}
	for _, w := range want {
		assert.Equal(t, w, <-src.Events())
	}
}

func TestSourceCloseUnblocksEmit(t *testing.T) {
	src := NewSource(0)
	done := make(chan struct{})
	go func() {
		src.Input("blocked")
		close(done)
	}()
	src.Close()
	<-done

	// emits after close return immediately
	src.Input("after")
	src.Close()
}
