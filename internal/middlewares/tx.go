package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/logger"
)

// TxMiddleware runs the handler inside one database transaction.
// The response is buffered until the transaction is settled: it commits when
// the handler answered with a status below 400 and rolls back otherwise,
// including on panic. A failed commit turns the response into a 500.
// Hooks registered with AfterCommit and AfterRollback run once the outcome is known.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			hooks := &txHooks{}
			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					hooks.run(r.Context(), hooks.afterRollback)
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)

			bw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to roll back transaction", "error", err)
				}
				hooks.run(r.Context(), hooks.afterRollback)
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				hooks.run(r.Context(), hooks.afterRollback)
				w.Header().Del("Location")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
				return
			}
			hooks.run(r.Context(), hooks.afterCommit)
			bw.flush()
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type hooksContextKey struct{}

var (
	txKey    = contextKey{}
	hooksKey = hooksContextKey{}
)

// txHooks collects the side effects that wait for the transaction outcome.
type txHooks struct {
	mu            sync.Mutex
	afterCommit   []func(ctx context.Context)
	afterRollback []func(ctx context.Context)
}

func (h *txHooks) run(ctx context.Context, fns []func(ctx context.Context)) {
	h.mu.Lock()
	pending := append([]func(ctx context.Context){}, fns...)
	h.mu.Unlock()
	for _, fn := range pending {
		fn(ctx)
	}
}

func hooksFromContext(ctx context.Context) *txHooks {
	h, _ := ctx.Value(hooksKey).(*txHooks)
	return h
}

// AfterCommit runs fn once the request transaction has committed.
// Without a transaction in ctx fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	h := hooksFromContext(ctx)
	if h == nil {
		fn(ctx)
		return
	}
	h.mu.Lock()
	h.afterCommit = append(h.afterCommit, fn)
	h.mu.Unlock()
}

// AfterRollback runs fn if the request transaction is rolled back or fails to commit.
// Without a transaction in ctx there is nothing to undo and fn is dropped.
func AfterRollback(ctx context.Context, fn func(ctx context.Context)) {
	h := hooksFromContext(ctx)
	if h == nil {
		return
	}
	h.mu.Lock()
	h.afterRollback = append(h.afterRollback, fn)
	h.mu.Unlock()
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// bufferedWriter holds the status and body until flush is called.
// Headers go straight to the underlying writer since they are not sent before WriteHeader.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	bw.ResponseWriter.Write(bw.body.Bytes())
}
