// Package sql implements the storage interface on PostgreSQL or SQLite.
package sql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
	"netbound/internal/record"
	"netbound/internal/transcribe"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// isUniqueViolation checks if an error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL
	if strings.Contains(errStr, "duplicate key value violates unique constraint") {
		return true
	}
	return false
}

// wrapUniqueError converts UNIQUE violations to domain.ErrAlreadyExists. The
// primary-key constraint is what makes Insert atomic under concurrent
// requests; the orchestrator's existence pre-check is advisory only.
func wrapUniqueError(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Store implements the storage interface using SQL.
type Store struct {
	db     *sqlx.DB
	driver string
}

// New creates a new SQL store.
func New(driver, dsn string) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Run migrations
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(driver); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db, driver: driver}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Networks returns the network repository.
func (s *Store) Networks() lifecycle.Repository[domain.Network] {
	return &networkRepo{db: s.db}
}

// Policies returns the QoS policy repository.
func (s *Store) Policies() lifecycle.Repository[domain.QosPolicy] {
	return &policyRepo{db: s.db}
}

type networkRow struct {
	ID              string  `db:"id"`
	TenantID        *string `db:"tenant_id"`
	Name            *string `db:"name"`
	AdminStateUp    *bool   `db:"admin_state_up"`
	Status          *string `db:"status"`
	Shared          *bool   `db:"shared"`
	RouterExternal  *bool   `db:"router_external"`
	NetworkType     *string `db:"provider_network_type"`
	PhysicalNetwork *string `db:"provider_physical_network"`
	SegmentationID  *int    `db:"provider_segmentation_id"`
	QosPolicyID     *string `db:"qos_policy_id"`
}

func rowFromNetworkRecord(rec record.Network) networkRow {
	row := networkRow{
		ID:              rec.UUID.String(),
		Name:            rec.Name,
		AdminStateUp:    rec.AdminStateUp,
		Status:          rec.Status,
		Shared:          rec.Shared,
		RouterExternal:  rec.External,
		NetworkType:     rec.NetworkType,
		PhysicalNetwork: rec.PhysicalNetwork,
		SegmentationID:  rec.SegmentationID,
	}
	if !rec.TenantID.IsZero() {
		v := rec.TenantID.String()
		row.TenantID = &v
	}
	if !rec.QosPolicy.IsZero() {
		v := rec.QosPolicy.String()
		row.QosPolicyID = &v
	}
	return row
}

func networkRecordFromRow(row networkRow) (record.Network, error) {
	rec := record.Network{
		Name:            row.Name,
		AdminStateUp:    row.AdminStateUp,
		Status:          row.Status,
		Shared:          row.Shared,
		External:        row.RouterExternal,
		NetworkType:     row.NetworkType,
		PhysicalNetwork: row.PhysicalNetwork,
		SegmentationID:  row.SegmentationID,
	}
	var err error
	if rec.UUID, err = record.ParseUUID(row.ID); err != nil {
		return record.Network{}, errors.Wrap(err, "corrupt network row")
	}
	if row.TenantID != nil {
		if rec.TenantID, err = record.ParseUUID(*row.TenantID); err != nil {
			return record.Network{}, errors.Wrap(err, "corrupt network row")
		}
	}
	if row.QosPolicyID != nil {
		if rec.QosPolicy, err = record.ParseUUID(*row.QosPolicyID); err != nil {
			return record.Network{}, errors.Wrap(err, "corrupt network row")
		}
	}
	return rec, nil
}

type networkRepo struct {
	db *sqlx.DB
}

const networkColumns = `id, tenant_id, name, admin_state_up, status, shared, router_external,
	provider_network_type, provider_physical_network, provider_segmentation_id, qos_policy_id`

func (r *networkRepo) GetAll(ctx context.Context) ([]domain.Network, error) {
	var rows []networkRow
	query := `SELECT ` + networkColumns + ` FROM networks ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "listing networks")
	}
	out := make([]domain.Network, 0, len(rows))
	for _, row := range rows {
		rec, err := networkRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, transcribe.NetworkFromRecord(rec))
	}
	return out, nil
}

func (r *networkRepo) Get(ctx context.Context, id string) (domain.Network, error) {
	var row networkRow
	query := r.db.Rebind(`SELECT ` + networkColumns + ` FROM networks WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return domain.Network{}, errors.Wrapf(domain.ErrNotFound, "network %q", id)
		}
		return domain.Network{}, errors.Wrap(err, "getting network")
	}
	rec, err := networkRecordFromRow(row)
	if err != nil {
		return domain.Network{}, err
	}
	return transcribe.NetworkFromRecord(rec), nil
}

func (r *networkRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := r.db.Rebind(`SELECT EXISTS(SELECT 1 FROM networks WHERE id = ?)`)
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, errors.Wrap(err, "checking network existence")
	}
	return exists, nil
}

func (r *networkRepo) InUse(ctx context.Context, id string) (bool, error) {
	var inUse bool
	query := r.db.Rebind(`SELECT EXISTS(SELECT 1 FROM network_attachments WHERE network_id = ?)`)
	if err := r.db.GetContext(ctx, &inUse, query, id); err != nil {
		return false, errors.Wrap(err, "checking network attachments")
	}
	return inUse, nil
}

func (r *networkRepo) Insert(ctx context.Context, n domain.Network) error {
	rec, err := transcribe.NetworkToRecord(n)
	if err != nil {
		return err
	}
	row := rowFromNetworkRecord(rec)
	query := `INSERT INTO networks (` + networkColumns + `)
		VALUES (:id, :tenant_id, :name, :admin_state_up, :status, :shared, :router_external,
		:provider_network_type, :provider_physical_network, :provider_segmentation_id, :qos_policy_id)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errors.Wrapf(wrapUniqueError(err), "inserting network %q", row.ID)
	}
	return nil
}

func (r *networkRepo) Update(ctx context.Context, id string, n domain.Network) error {
	rec, err := transcribe.NetworkToRecord(n)
	if err != nil {
		return err
	}
	row := rowFromNetworkRecord(rec)
	row.ID = id
	query := `UPDATE networks SET tenant_id = :tenant_id, name = :name,
		admin_state_up = :admin_state_up, status = :status, shared = :shared,
		router_external = :router_external, provider_network_type = :provider_network_type,
		provider_physical_network = :provider_physical_network,
		provider_segmentation_id = :provider_segmentation_id, qos_policy_id = :qos_policy_id
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return errors.Wrapf(err, "updating network %q", id)
	}
	return nil
}

func (r *networkRepo) Remove(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM networks WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrapf(err, "removing network %q", id)
	}
	return nil
}
