package faultreport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

func TestReporter_Report(t *testing.T) {
	t.Run("report is delivered to the log endpoint", func(t *testing.T) {
		var mu sync.Mutex
		var received []domain.ClientFaultReport

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/log-client-error", r.URL.Path)

			var report domain.ClientFaultReport
			require.NoError(t, json.NewDecoder(r.Body).Decode(&report))

			mu.Lock()
			received = append(received, report)
			mu.Unlock()

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		reporter := NewReporter(server.URL, ReporterConfig{Workers: 1, QueueSize: 4}, zap.NewNop())
		reporter.Start(context.Background())

		report := NewErrorReport("boom", Location{Source: "main.go", Line: 10, Col: 2}, "stack", "test-agent")
		reporter.Report(report)
		reporter.Stop()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, received, 1)
		assert.Equal(t, domain.FaultTypeError, received[0].Type)
		assert.Equal(t, "boom", received[0].Message)
		assert.Equal(t, "main.go", received[0].Source)
		assert.Equal(t, "test-agent", received[0].UserAgent)
		assert.NotEmpty(t, received[0].ID)
		assert.NotEmpty(t, received[0].Timestamp)
	})

	t.Run("submission failure is swallowed", func(t *testing.T) {
		reporter := NewReporter("http://127.0.0.1:1", ReporterConfig{Workers: 1, QueueSize: 4}, zap.NewNop())
		reporter.Start(context.Background())

		reporter.Report(NewRejectionReport("reason", "", "agent"))

		// Stop не должен зависнуть и не должен вернуть ошибку наружу
		done := make(chan struct{})
		go func() {
			reporter.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("reporter did not stop")
		}
	})

	t.Run("full queue drops reports without blocking", func(t *testing.T) {
		// Воркеры не запущены: очередь никем не вычитывается
		reporter := NewReporter("http://127.0.0.1:1", ReporterConfig{Workers: 1, QueueSize: 1}, zap.NewNop())

		done := make(chan struct{})
		go func() {
			for i := 0; i < 10; i++ {
				reporter.Report(NewRejectionReport("overflow", "", "agent"))
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Report blocked on a full queue")
		}
	})
}

func TestNewReports(t *testing.T) {
	t.Run("error report fields", func(t *testing.T) {
		report := NewErrorReport("msg", Location{Source: "app.go", Line: 5, Col: 7}, "trace", "ua")

		assert.Equal(t, domain.FaultTypeError, report.Type)
		assert.Equal(t, "msg", report.Message)
		assert.Empty(t, report.Reason)
		assert.Equal(t, 5, report.Line)
		assert.Equal(t, 7, report.Col)
	})

	t.Run("rejection report fields", func(t *testing.T) {
		report := NewRejectionReport("deadline exceeded", "trace", "ua")

		assert.Equal(t, domain.FaultTypeRejection, report.Type)
		assert.Equal(t, "deadline exceeded", report.Reason)
		assert.Empty(t, report.Message)
		assert.Empty(t, report.Source)
	})
}
