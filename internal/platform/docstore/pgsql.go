package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
)

// notifyChannel is the LISTEN/NOTIFY channel raised by the documents
// table trigger. The payload is the collection name that changed.
const notifyChannel = "docstore_changes"

// PgsqlClient implements Client on top of a PostgreSQL documents table.
type PgsqlClient struct {
	pool *pgxpool.Pool
}

var _ Client = (*PgsqlClient)(nil)

// NewPgsqlClient creates a document store client using the given pool.
func NewPgsqlClient(pool *pgxpool.Pool) *PgsqlClient {
	return &PgsqlClient{pool: pool}
}

func (c *PgsqlClient) List(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	query := `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(filter) > 0 {
		match, err := json.Marshal(map[string]any(filter))
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to encode filter", err)
		}
		query += ` AND data @> $2`
		args = append(args, match)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyError("failed to list documents", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, classifyError("failed to scan document", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("failed to read documents", err)
	}
	return docs, nil
}

func (c *PgsqlClient) Get(ctx context.Context, collection, id string) (*Document, error) {
	query := `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2`

	var doc Document
	err := c.pool.QueryRow(ctx, query, collection, id).Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("document %s/%s not found", collection, id))
	}
	if err != nil {
		return nil, classifyError("failed to get document", err)
	}
	return &doc, nil
}

func (c *PgsqlClient) Create(ctx context.Context, collection, id string, data any) (*Document, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to encode document", err)
	}

	query := `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, data, created_at, updated_at`

	var doc Document
	err = c.pool.QueryRow(ctx, query, collection, id, payload).Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError(fmt.Sprintf("document %s/%s already exists", collection, id))
		}
		return nil, classifyError("failed to create document", err)
	}
	return &doc, nil
}

func (c *PgsqlClient) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode document patch", err)
	}

	// The || operator merges the patch into the stored payload.
	query := `
		UPDATE documents
		SET data = data || $3, updated_at = now()
		WHERE collection = $1 AND id = $2`

	tag, err := c.pool.Exec(ctx, query, collection, id, patch)
	if err != nil {
		return classifyError("failed to update document", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("document %s/%s not found", collection, id))
	}
	return nil
}

func (c *PgsqlClient) Delete(ctx context.Context, collection, id string) error {
	// Deleting an already-deleted document is a no-op.
	_, err := c.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return classifyError("failed to delete document", err)
	}
	return nil
}

func (c *PgsqlClient) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, classifyError("failed to acquire listener connection", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, classifyError("failed to listen for changes", err)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer conn.Release()
		defer close(ch)
		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				return
			}
			if n.Payload != collection {
				continue
			}
			// Coalesce bursts of changes into a single pending signal.
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()
	return ch, nil
}

// classifyError maps PostgreSQL failures onto the application error taxonomy.
func classifyError(msg string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewGatewayTimeoutError(msg)
	case errors.Is(err, context.Canceled):
		return apperrors.NewAppError(499, msg, apperrors.ErrUnavailable)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42501":
			return apperrors.NewAppError(403, msg, apperrors.ErrPermissionDenied)
		case pgErr.Code == "28000" || pgErr.Code == "28P01":
			return apperrors.NewAppError(401, msg, apperrors.ErrUnauthenticated)
		case pgErr.Code[:2] == "23":
			return apperrors.NewAppError(412, msg, apperrors.ErrPreconditionFailed)
		case pgErr.Code[:2] == "08" || pgErr.Code == "57P01":
			return apperrors.NewAppError(503, msg, apperrors.ErrUnavailable)
		}
	}
	return apperrors.NewAppError(500, msg, errors.Join(apperrors.ErrUnknown, err))
}
