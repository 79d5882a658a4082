package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/tracking"
)

type stubTracker struct {
	mu      sync.Mutex
	version uint64
	filter  *int64
	ch      chan struct{}
}

func (s *stubTracker) View(courierID *int64) tracking.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = courierID
	return tracking.View{Version: s.version, Deliveries: []tracking.Item{}}
}

func (s *stubTracker) Watch() (<-chan struct{}, func()) { return s.ch, func() {} }

func (s *stubTracker) bump() {
	s.mu.Lock()
	s.version++
	s.mu.Unlock()
	s.ch <- struct{}{}
}

func TestTrackingHandler_Get(t *testing.T) {
	t.Parallel()

	st := &stubTracker{version: 3, ch: make(chan struct{}, 1)}
	h := NewTrackingHandler(testLogger(), st)

	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/tracking?courier_id=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, st.filter)
	assert.Equal(t, int64(5), *st.filter)
	assert.EqualValues(t, 3, decodeBody[map[string]any](t, rr)["version"])

	rr = httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/tracking?courier_id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTrackingHandler_Stream(t *testing.T) {
	t.Parallel()

	st := &stubTracker{ch: make(chan struct{}, 1)}
	h := NewTrackingHandler(testLogger(), st)
	h.heartbeat = time.Hour

	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	readEvent := func() []string {
		var lines []string
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				return lines
			}
			lines = append(lines, line)
		}
		return lines
	}

	first := readEvent()
	require.Len(t, first, 3)
	assert.Equal(t, "id: 0", first[0])
	assert.Equal(t, "event: view", first[1])
	assert.True(t, strings.HasPrefix(first[2], "data: {"), first[2])

	st.bump()
	second := readEvent()
	require.NotEmpty(t, second)
	assert.Equal(t, "id: 1", second[0])
}
