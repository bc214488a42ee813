// Package postgres provides a network store backed by PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

// NetworkStore implements network.Store for PostgreSQL.
type NetworkStore struct {
	pool       *pgxpool.Pool
	serializer *serialization.Serializer
	tableName  string
}

// NewNetworkStore creates a PostgreSQL network store.
func NewNetworkStore(pool *pgxpool.Pool, serializer *serialization.Serializer) *NetworkStore {
	return &NetworkStore{
		pool:       pool,
		serializer: serializer,
		tableName:  "networks",
	}
}

// CreateTables creates the backing table and indexes.
func (s *NetworkStore) CreateTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			geometry BYTEA NOT NULL,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_%s_name ON %s (name);
		CREATE INDEX IF NOT EXISTS idx_%s_updated_at ON %s (updated_at);
	`, s.tableName, s.tableName, s.tableName, s.tableName, s.tableName)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Save stores a network with an upsert.
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
		INSERT INTO %s (id, name, geometry, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			geometry = EXCLUDED.geometry,
			metadata = EXCLUDED.metadata,
			updated_at = EXCLUDED.updated_at
	`, s.tableName)

	_, err = s.pool.Exec(ctx, query,
		n.ID, n.Name, blob, metadataJSON, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save network: %w", err)
	}
	metrics.IncStoreSaves("postgres")
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
		WHERE id = $1
	`, s.tableName)

	var n network.Network
	var blob []byte
	var metadataJSON []byte

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Name, &blob, &metadataJSON, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, network.ErrNetworkNotFound
		}
		return nil, fmt.Errorf("failed to load network: %w", err)
	}

	if err := s.decodePayload(&n, blob, metadataJSON); err != nil {
		return nil, err
	}
	metrics.IncStoreLoads("postgres")
	return &n, nil
}

// List retrieves networks based on filter criteria.
func (s *NetworkStore) List(ctx context.Context, filter network.Filter) ([]*network.Network, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	query, args := s.buildListQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	defer rows.Close()

	var networks []*network.Network
	for rows.Next() {
		var n network.Network
		var blob []byte
		var metadataJSON []byte
		if err := rows.Scan(&n.ID, &n.Name, &blob, &metadataJSON, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan network row: %w", err)
		}
		if err := s.decodePayload(&n, blob, metadataJSON); err != nil {
			return nil, err
		}
		networks = append(networks, &n)
	}
	return networks, rows.Err()
}

// Delete removes a network by ID.
func (s *NetworkStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return network.ErrInvalidNetworkID
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.tableName)
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete network: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return network.ErrNetworkNotFound
	}
	return nil
}

// Close releases the connection pool.
func (s *NetworkStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *NetworkStore) decodePayload(n *network.Network, blob, metadataJSON []byte) error {
	var geo geometryBlob
	if err := s.serializer.Deserialize(blob, &geo); err != nil {
		return fmt.Errorf("failed to deserialize geometry: %w", err)
	}
	n.Lines = geo.Lines
	n.Bridges = geo.Bridges
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
			return fmt.Errorf("failed to deserialize metadata: %w", err)
		}
	}
	return nil
}

// buildListQuery constructs the SQL query for listing networks.
func (s *NetworkStore) buildListQuery(filter network.Filter) (string, []interface{}) {
	query := fmt.Sprintf(
		"SELECT id, name, geometry, metadata, created_at, updated_at FROM %s WHERE TRUE", s.tableName)
	args := make([]interface{}, 0)
	arg := 0
	next := func() string {
		arg++
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Name != "" {
		query += " AND name = " + next()
		args = append(args, filter.Name)
	}
	if filter.Repaired != nil {
		query += " AND (metadata->>'repaired')::boolean = " + next()
		args = append(args, *filter.Repaired)
	}
	if filter.Since != nil {
		query += " AND updated_at > " + next()
		args = append(args, *filter.Since)
	}
	query += " ORDER BY updated_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + next()
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + next()
		args = append(args, filter.Offset)
	}
	return query, args
}
