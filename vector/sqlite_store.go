package vector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/covertree/index"
	"github.com/viant/covertree/index/cover"
)

const storageName = "docs"

// SQLiteStore is a Store backed by a SQLite docs table and a cover-tree
// index over the document embeddings. The index is built lazily from the
// table, kept in memory, and persisted to vector_storage so a later process
// can load it instead of rebuilding.
//
// The cover tree has no deletion, so Remove drops the index and the next
// Nearest rebuilds it.
type SQLiteStore struct {
	db       *sql.DB
	distance cover.DistanceFunction
	persist  bool
	logger   *slog.Logger

	mu    sync.Mutex
	index *cover.Index
	dirty bool
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithDistance selects the index metric; unknown metrics are ignored.
func WithDistance(d cover.DistanceFunction) Option {
	return func(s *SQLiteStore) {
		if d.Function() != nil {
			s.distance = d
		}
	}
}

// WithLogger sets the logger used for index lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SQLiteStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPersistence controls whether the index is saved to vector_storage.
// It is enabled by default.
func WithPersistence(enabled bool) Option {
	return func(s *SQLiteStore) { s.persist = enabled }
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the schema
// exists in the provided database.
func NewSQLiteStore(ctx context.Context, db *sql.DB, opts ...Option) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	s := &SQLiteStore{
		db:       db,
		distance: cover.DistanceFunctionEuclidean,
		persist:  true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return s, nil
}

// AddDocuments inserts documents into the docs table in a single
// transaction. Every Document.ID must be set, every embedding must match
// the dimension of embeddings already stored and be measurable under the
// store metric (see cover.Validate).
func (s *SQLiteStore) AddDocuments(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	dim, err := storedDimension(ctx, tx)
	if err != nil {
		return nil, err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO docs(id, content, meta, embedding) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("vector: Document.ID must be set in AddDocuments")
		}
		if n := len(d.Embedding); n > 0 {
			if dim == 0 {
				dim = n
			} else if n != dim {
				return nil, fmt.Errorf("vector: document %q has dim %d, want %d: %w", d.ID, n, dim, index.ErrDimensionMismatch)
			}
			if err := cover.Validate(s.distance, d.Embedding); err != nil {
				return nil, fmt.Errorf("vector: document %q: %w", d.ID, err)
			}
		}
		emb, err := EncodeEmbedding(d.Embedding)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, d.ID, d.Content, d.Metadata, emb); err != nil {
			return nil, fmt.Errorf("vector: insert %q: %w", d.ID, err)
		}
		ids = append(ids, d.ID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vector_storage WHERE table_name = ?`, storageName); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if s.index != nil {
		for _, d := range docs {
			if len(d.Embedding) == 0 {
				continue
			}
			if err := s.index.Add(d.ID, d.Embedding); err != nil {
				s.index = nil
				s.logger.Warn("vector: dropping index after failed add", "id", d.ID, "error", err)
				break
			}
		}
		s.dirty = s.index != nil
	}
	return ids, nil
}

// Nearest returns the document whose embedding is closest to queryEmbedding.
func (s *SQLiteStore) Nearest(ctx context.Context, queryEmbedding []float32) (Document, float64, error) {
	if len(queryEmbedding) == 0 {
		return Document{}, 0, fmt.Errorf("vector: Nearest called with empty embedding")
	}
	s.mu.Lock()
	idx, err := s.ensureIndex(ctx)
	s.mu.Unlock()
	if err != nil {
		return Document{}, 0, err
	}
	m, err := idx.Nearest(queryEmbedding)
	if err != nil {
		if errors.Is(err, index.ErrEmpty) {
			return Document{}, 0, ErrNotFound
		}
		return Document{}, 0, err
	}
	doc, err := s.Get(ctx, m.ID)
	if err != nil {
		return Document{}, 0, err
	}
	return doc, m.Distance, nil
}

// Get loads a document by ID, including its embedding.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Document, error) {
	var (
		d    = Document{ID: id}
		meta sql.NullString
		body sql.NullString
		emb  []byte
	)
	err := s.db.QueryRowContext(ctx, `SELECT content, meta, embedding FROM docs WHERE id = ?`, id).Scan(&body, &meta, &emb)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	d.Content, d.Metadata = body.String, meta.String
	if d.Embedding, err = DecodeEmbedding(emb); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Remove deletes a document by ID and drops the index, which is rebuilt on
// the next Nearest.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("vector: Remove called with empty id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx, `DELETE FROM docs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	s.index, s.dirty = nil, false
	_, err = s.db.ExecContext(ctx, `DELETE FROM vector_storage WHERE table_name = ?`, storageName)
	return err
}

// ensureIndex returns the in-memory index, loading it from vector_storage or
// rebuilding it from the docs table when needed. Callers hold s.mu.
func (s *SQLiteStore) ensureIndex(ctx context.Context) (*cover.Index, error) {
	if s.index != nil {
		if s.dirty && s.persist {
			if err := s.save(ctx, s.index); err != nil {
				return nil, err
			}
		}
		s.dirty = false
		return s.index, nil
	}
	if s.persist {
		idx, ok, err := s.load(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			s.logger.Debug("vector: loaded persisted index", "ids", idx.Len())
			s.index = idx
			return idx, nil
		}
	}
	idx, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	stats := idx.Stats()
	s.logger.Debug("vector: built index", "ids", stats.IDs, "points", stats.Points, "height", stats.Height)
	if s.persist {
		if err := s.save(ctx, idx); err != nil {
			return nil, err
		}
	}
	s.index, s.dirty = idx, false
	return idx, nil
}

func (s *SQLiteStore) build(ctx context.Context) (*cover.Index, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, embedding FROM docs WHERE embedding IS NOT NULL ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	var vecs [][]float32
	for rows.Next() {
		var id string
		var emb []byte
		if err := rows.Scan(&id, &emb); err != nil {
			return nil, err
		}
		if len(emb) == 0 {
			continue
		}
		v, err := DecodeEmbedding(emb)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		vecs = append(vecs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	idx := cover.New(cover.WithDistance(s.distance))
	if err := idx.Build(ids, vecs); err != nil {
		return nil, err
	}
	return idx, nil
}

func (s *SQLiteStore) load(ctx context.Context) (*cover.Index, bool, error) {
	var distance string
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT distance, "index" FROM vector_storage WHERE table_name = ?`, storageName).Scan(&distance, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if cover.DistanceFunction(distance) != s.distance || !cover.IsCoverBlob(blob) {
		return nil, false, nil
	}
	idx := cover.New(cover.WithDistance(s.distance))
	if err := idx.UnmarshalBinary(blob); err != nil {
		s.logger.Warn("vector: ignoring unreadable persisted index", "error", err)
		return nil, false, nil
	}
	return idx, true, nil
}

func (s *SQLiteStore) save(ctx context.Context, idx *cover.Index) error {
	data, err := idx.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO vector_storage(table_name, distance, "index") VALUES(?, ?, ?)`, storageName, string(s.distance), data)
	return err
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// storedDimension returns the dimension of the first stored embedding, or 0.
func storedDimension(ctx context.Context, q queryer) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT length(embedding) FROM docs WHERE length(embedding) > 0 LIMIT 1`).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n / 4, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
