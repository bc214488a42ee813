// Package sqlite provides a network store backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/network"
	"github.com/netmend/netmend/internal/infrastructure/metrics"
	"github.com/netmend/netmend/pkg/serialization"
)

// geometryBlob is the serialized payload stored per network row.
type geometryBlob struct {
	Lines   []geometry.Line `msgpack:"lines" json:"lines"`
	Bridges []geometry.Line `msgpack:"bridges" json:"bridges"`
}

// NetworkStore implements network.Store for SQLite.
type NetworkStore struct {
	db         *sql.DB
	serializer *serialization.Serializer
	tableName  string
}

// NewNetworkStore creates a SQLite network store.
func NewNetworkStore(db *sql.DB, serializer *serialization.Serializer) *NetworkStore {
	return &NetworkStore{
		db:         db,
		serializer: serializer,
		tableName:  "networks",
	}
}

// WithTableName overrides the default table name. Only alphanumeric
// and underscore are permitted to prevent SQL injection via
// identifiers.
func (s *NetworkStore) WithTableName(name string) *NetworkStore {
	if isSafeIdent(name) {
		s.tableName = name
	}
	return s
}

func isSafeIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

// CreateTables creates the backing table and indexes.
func (s *NetworkStore) CreateTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			geometry BLOB NOT NULL,
			metadata TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_%s_name ON %s (name);
		CREATE INDEX IF NOT EXISTS idx_%s_updated_at ON %s (updated_at);
	`, s.tableName, s.tableName, s.tableName, s.tableName, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Save stores a network, replacing any previous version.
func (s *NetworkStore) Save(ctx context.Context, n *network.Network) error {
	if n == nil {
		return network.ErrNilNetwork
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	blob, err := s.serializer.Serialize(geometryBlob{Lines: n.Lines, Bridges: n.Bridges})
	if err != nil {
		return fmt.Errorf("failed to serialize geometry: %w", err)
	}
	metadataJSON, err := json.Marshal(n.Metadata)
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (id, name, geometry, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query,
		n.ID, n.Name, blob, string(metadataJSON), n.CreatedAt.Unix(), n.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save network: %w", err)
	}
	metrics.IncStoreSaves("sqlite")
	return nil
}

// Load retrieves a network by ID.
func (s *NetworkStore) Load(ctx context.Context, id string) (*network.Network, error) {
	if id == "" {
		return nil, network.ErrInvalidNetworkID
	}

	query := fmt.Sprintf(`
		SELECT id, name, geometry, metadata, created_at, updated_at
		FROM %s
		WHERE id = ?
	`, s.tableName)

	n, err := s.scanRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, network.ErrNetworkNotFound
		}
		return nil, fmt.Errorf("failed to load network: %w", err)
	}
	metrics.IncStoreLoads("sqlite")
	return n, nil
}

// List retrieves networks based on filter criteria.
func (s *NetworkStore) List(ctx context.Context, filter network.Filter) ([]*network.Network, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	query, args := s.buildListQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	defer rows.Close()

	var networks []*network.Network
	for rows.Next() {
		n, err := s.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan network row: %w", err)
		}
		// Repaired filter lives inside the metadata JSON, applied here.
		if filter.Repaired != nil && n.Metadata.Repaired != *filter.Repaired {
			continue
		}
		networks = append(networks, n)
	}
	return networks, rows.Err()
}

// Delete removes a network by ID.
func (s *NetworkStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return network.ErrInvalidNetworkID
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.tableName)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete network: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return network.ErrNetworkNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *NetworkStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *NetworkStore) scanRow(row rowScanner) (*network.Network, error) {
	var n network.Network
	var blob []byte
	var metadataJSON string
	var createdAt, updatedAt int64

	if err := row.Scan(&n.ID, &n.Name, &blob, &metadataJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = time.Unix(createdAt, 0)
	n.UpdatedAt = time.Unix(updatedAt, 0)

	var geo geometryBlob
	if err := s.serializer.Deserialize(blob, &geo); err != nil {
		return nil, fmt.Errorf("failed to deserialize geometry: %w", err)
	}
	n.Lines = geo.Lines
	n.Bridges = geo.Bridges

	if err := json.Unmarshal([]byte(metadataJSON), &n.Metadata); err != nil {
		return nil, fmt.Errorf("failed to deserialize metadata: %w", err)
	}
	return &n, nil
}

// buildListQuery constructs the SQL query for listing networks.
func (s *NetworkStore) buildListQuery(filter network.Filter) (string, []interface{}) {
	query := fmt.Sprintf(
		"SELECT id, name, geometry, metadata, created_at, updated_at FROM %s WHERE 1=1", s.tableName)
	args := make([]interface{}, 0)

	if filter.Name != "" {
		query += " AND name = ?"
		args = append(args, filter.Name)
	}
	if filter.Since != nil {
		query += " AND updated_at > ?"
		args = append(args, filter.Since.Unix())
	}
	query += " ORDER BY updated_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unbounded.
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}
	return query, args
}
