package sql

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"netbound/internal/domain"
	"netbound/internal/record"
	"netbound/internal/transcribe"
)

type policyRow struct {
	ID       string  `db:"id"`
	TenantID *string `db:"tenant_id"`
	Name     *string `db:"name"`
	Shared   *bool   `db:"shared"`
}

type bandwidthRuleRow struct {
	ID           string  `db:"id"`
	PolicyID     string  `db:"policy_id"`
	TenantID     *string `db:"tenant_id"`
	MaxKbps      *int64  `db:"max_kbps"`
	MaxBurstKbps *int64  `db:"max_burst_kbps"`
}

type dscpRuleRow struct {
	ID       string  `db:"id"`
	PolicyID string  `db:"policy_id"`
	TenantID *string `db:"tenant_id"`
	DSCPMark *int    `db:"dscp_mark"`
}

type policyRepo struct {
	db *sqlx.DB
}

func (r *policyRepo) GetAll(ctx context.Context) ([]domain.QosPolicy, error) {
	var rows []policyRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, tenant_id, name, shared FROM qos_policies ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "listing qos policies")
	}

	var bwRows []bandwidthRuleRow
	if err := r.db.SelectContext(ctx, &bwRows, `SELECT id, policy_id, tenant_id, max_kbps, max_burst_kbps FROM qos_bandwidth_rules ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "listing bandwidth rules")
	}
	var dscpRows []dscpRuleRow
	if err := r.db.SelectContext(ctx, &dscpRows, `SELECT id, policy_id, tenant_id, dscp_mark FROM qos_dscp_rules ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "listing dscp rules")
	}

	bwByPolicy := make(map[string][]bandwidthRuleRow)
	for _, row := range bwRows {
		bwByPolicy[row.PolicyID] = append(bwByPolicy[row.PolicyID], row)
	}
	dscpByPolicy := make(map[string][]dscpRuleRow)
	for _, row := range dscpRows {
		dscpByPolicy[row.PolicyID] = append(dscpByPolicy[row.PolicyID], row)
	}

	out := make([]domain.QosPolicy, 0, len(rows))
	for _, row := range rows {
		rec, err := policyRecordFromRows(row, bwByPolicy[row.ID], dscpByPolicy[row.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, transcribe.PolicyFromRecord(rec))
	}
	return out, nil
}

func (r *policyRepo) Get(ctx context.Context, id string) (domain.QosPolicy, error) {
	var row policyRow
	query := r.db.Rebind(`SELECT id, tenant_id, name, shared FROM qos_policies WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return domain.QosPolicy{}, errors.Wrapf(domain.ErrNotFound, "qos policy %q", id)
		}
		return domain.QosPolicy{}, errors.Wrap(err, "getting qos policy")
	}

	var bwRows []bandwidthRuleRow
	query = r.db.Rebind(`SELECT id, policy_id, tenant_id, max_kbps, max_burst_kbps FROM qos_bandwidth_rules WHERE policy_id = ? ORDER BY id`)
	if err := r.db.SelectContext(ctx, &bwRows, query, id); err != nil {
		return domain.QosPolicy{}, errors.Wrap(err, "listing bandwidth rules")
	}
	var dscpRows []dscpRuleRow
	query = r.db.Rebind(`SELECT id, policy_id, tenant_id, dscp_mark FROM qos_dscp_rules WHERE policy_id = ? ORDER BY id`)
	if err := r.db.SelectContext(ctx, &dscpRows, query, id); err != nil {
		return domain.QosPolicy{}, errors.Wrap(err, "listing dscp rules")
	}

	rec, err := policyRecordFromRows(row, bwRows, dscpRows)
	if err != nil {
		return domain.QosPolicy{}, err
	}
	return transcribe.PolicyFromRecord(rec), nil
}

func (r *policyRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := r.db.Rebind(`SELECT EXISTS(SELECT 1 FROM qos_policies WHERE id = ?)`)
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, errors.Wrap(err, "checking qos policy existence")
	}
	return exists, nil
}

// InUse reports whether any network references the policy.
func (r *policyRepo) InUse(ctx context.Context, id string) (bool, error) {
	var inUse bool
	query := r.db.Rebind(`SELECT EXISTS(SELECT 1 FROM networks WHERE qos_policy_id = ?)`)
	if err := r.db.GetContext(ctx, &inUse, query, id); err != nil {
		return false, errors.Wrap(err, "checking qos policy references")
	}
	return inUse, nil
}

func (r *policyRepo) Insert(ctx context.Context, p domain.QosPolicy) error {
	rec, err := transcribe.PolicyToRecord(p)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	row := rowFromPolicyRecord(rec)
	query := `INSERT INTO qos_policies (id, tenant_id, name, shared) VALUES (:id, :tenant_id, :name, :shared)`
	if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
		return errors.Wrapf(wrapUniqueError(err), "inserting qos policy %q", row.ID)
	}
	if err := insertRules(ctx, tx, row.ID, rec); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "committing qos policy insert")
}

func (r *policyRepo) Update(ctx context.Context, id string, p domain.QosPolicy) error {
	rec, err := transcribe.PolicyToRecord(p)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	row := rowFromPolicyRecord(rec)
	row.ID = id
	query := `UPDATE qos_policies SET tenant_id = :tenant_id, name = :name, shared = :shared WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
		return errors.Wrapf(err, "updating qos policy %q", id)
	}
	if err := deleteRules(ctx, tx, id); err != nil {
		return err
	}
	if err := insertRules(ctx, tx, id, rec); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "committing qos policy update")
}

func (r *policyRepo) Remove(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if err := deleteRules(ctx, tx, id); err != nil {
		return err
	}
	query := tx.Rebind(`DELETE FROM qos_policies WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return errors.Wrapf(err, "removing qos policy %q", id)
	}
	return errors.Wrap(tx.Commit(), "committing qos policy removal")
}

func insertRules(ctx context.Context, tx *sqlx.Tx, policyID string, rec record.Policy) error {
	for _, rule := range rec.BandwidthLimitRules {
		row := bandwidthRuleRow{
			ID:           rule.UUID.String(),
			PolicyID:     policyID,
			MaxKbps:      rule.MaxKbps,
			MaxBurstKbps: rule.MaxBurstKbps,
		}
		if !rule.TenantID.IsZero() {
			v := rule.TenantID.String()
			row.TenantID = &v
		}
		query := `INSERT INTO qos_bandwidth_rules (id, policy_id, tenant_id, max_kbps, max_burst_kbps)
			VALUES (:id, :policy_id, :tenant_id, :max_kbps, :max_burst_kbps)`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return errors.Wrapf(wrapUniqueError(err), "inserting bandwidth rule %q", row.ID)
		}
	}
	for _, rule := range rec.DSCPMarkingRules {
		row := dscpRuleRow{
			ID:       rule.UUID.String(),
			PolicyID: policyID,
			DSCPMark: rule.DSCPMark,
		}
		if !rule.TenantID.IsZero() {
			v := rule.TenantID.String()
			row.TenantID = &v
		}
		query := `INSERT INTO qos_dscp_rules (id, policy_id, tenant_id, dscp_mark)
			VALUES (:id, :policy_id, :tenant_id, :dscp_mark)`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return errors.Wrapf(wrapUniqueError(err), "inserting dscp rule %q", row.ID)
		}
	}
	return nil
}

func deleteRules(ctx context.Context, tx *sqlx.Tx, policyID string) error {
	query := tx.Rebind(`DELETE FROM qos_bandwidth_rules WHERE policy_id = ?`)
	if _, err := tx.ExecContext(ctx, query, policyID); err != nil {
		return errors.Wrapf(err, "removing bandwidth rules for policy %q", policyID)
	}
	query = tx.Rebind(`DELETE FROM qos_dscp_rules WHERE policy_id = ?`)
	if _, err := tx.ExecContext(ctx, query, policyID); err != nil {
		return errors.Wrapf(err, "removing dscp rules for policy %q", policyID)
	}
	return nil
}

func rowFromPolicyRecord(rec record.Policy) policyRow {
	row := policyRow{
		ID:     rec.UUID.String(),
		Name:   rec.Name,
		Shared: rec.Shared,
	}
	if !rec.TenantID.IsZero() {
		v := rec.TenantID.String()
		row.TenantID = &v
	}
	return row
}

func policyRecordFromRows(row policyRow, bwRows []bandwidthRuleRow, dscpRows []dscpRuleRow) (record.Policy, error) {
	rec := record.Policy{
		Name:   row.Name,
		Shared: row.Shared,
	}
	var err error
	if rec.UUID, err = record.ParseUUID(row.ID); err != nil {
		return record.Policy{}, errors.Wrap(err, "corrupt qos policy row")
	}
	if row.TenantID != nil {
		if rec.TenantID, err = record.ParseUUID(*row.TenantID); err != nil {
			return record.Policy{}, errors.Wrap(err, "corrupt qos policy row")
		}
	}
	for _, bw := range bwRows {
		rule := record.BandwidthLimitRule{
			MaxKbps:      bw.MaxKbps,
			MaxBurstKbps: bw.MaxBurstKbps,
		}
		if rule.UUID, err = record.ParseUUID(bw.ID); err != nil {
			return record.Policy{}, errors.Wrap(err, "corrupt bandwidth rule row")
		}
		if bw.TenantID != nil {
			if rule.TenantID, err = record.ParseUUID(*bw.TenantID); err != nil {
				return record.Policy{}, errors.Wrap(err, "corrupt bandwidth rule row")
			}
		}
		rec.BandwidthLimitRules = append(rec.BandwidthLimitRules, rule)
	}
	for _, dscp := range dscpRows {
		rule := record.DSCPMarkingRule{DSCPMark: dscp.DSCPMark}
		if rule.UUID, err = record.ParseUUID(dscp.ID); err != nil {
			return record.Policy{}, errors.Wrap(err, "corrupt dscp rule row")
		}
		if dscp.TenantID != nil {
			if rule.TenantID, err = record.ParseUUID(*dscp.TenantID); err != nil {
				return record.Policy{}, errors.Wrap(err, "corrupt dscp rule row")
			}
		}
		rec.DSCPMarkingRules = append(rec.DSCPMarkingRules, rule)
	}
	return rec, nil
}
