package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jrsteele09/go-authlete/api"
	"github.com/jrsteele09/go-authlete/api/mocks"
	"github.com/jrsteele09/go-authlete/metrics"
)

func TestInstrument(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := metrics.New("authlete", registry)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	next := mocks.NewMockTransport(ctrl)
	gomock.InOrder(
		next.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&api.Response{StatusCode: http.StatusOK}, nil),
		next.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&api.Response{StatusCode: http.StatusBadRequest}, nil),
		next.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")),
	)

	transport := m.Instrument(next)
	ctx := context.Background()
	req := &api.Request{Endpoint: "Token", Method: http.MethodPost, Path: "/api/auth/token"}

	_, err = transport.Send(ctx, req)
	require.NoError(t, err)
	_, err = transport.Send(ctx, req)
	require.NoError(t, err)
	_, err = transport.Send(ctx, req)
	require.Error(t, err)

	expected := `
# HELP authlete_api_calls_total Total number of API calls that produced an HTTP response
# TYPE authlete_api_calls_total counter
authlete_api_calls_total{code="200",endpoint="Token"} 1
authlete_api_calls_total{code="400",endpoint="Token"} 1
# HELP authlete_api_call_errors_total Total number of API calls that failed before a response arrived
# TYPE authlete_api_call_errors_total counter
authlete_api_call_errors_total{endpoint="Token"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected),
		"authlete_api_calls_total", "authlete_api_call_errors_total"))
	count, err := testutil.GatherAndCount(registry, "authlete_api_call_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestHandler(t *testing.T) {
	m, err := metrics.New("authlete", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	next := mocks.NewMockTransport(ctrl)
	next.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&api.Response{StatusCode: http.StatusNoContent}, nil)
	_, err = m.Instrument(next).Send(context.Background(), &api.Request{Endpoint: "ClientDelete"})
	require.NoError(t, err)

	server := httptest.NewServer(m.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `authlete_api_calls_total{code="204",endpoint="ClientDelete"} 1`)
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := metrics.New("authlete", registry)
	require.NoError(t, err)
	_, err = metrics.New("authlete", registry)
	require.Error(t, err)
}
