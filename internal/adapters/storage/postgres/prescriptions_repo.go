package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vet-care-assistant/internal/domain/animals"
	"vet-care-assistant/internal/domain/prescriptions"
	"vet-care-assistant/internal/i18n"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

// forma del jsonb "medicines"
type medicineRow struct {
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Duration     string    `json:"duration"`
	Instructions localized `json:"instructions"`
	Precautions  localized `json:"precautions"`
}

type localized struct {
	EN string `json:"en"`
	TA string `json:"ta"`
}

func (l localized) text() i18n.Text {
	return i18n.Text{EN: l.EN, TA: l.TA}
}

const prescriptionColumns = `
	id, category, condition_en, condition_ta, severity,
	date_issued, medicines, follow_up_en, follow_up_ta
`

func (r *PrescriptionsRepo) List(ctx context.Context) ([]prescriptions.Prescription, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+prescriptionColumns+` FROM prescriptions ORDER BY date_issued DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescriptions.Prescription, 0, 8)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id string) (prescriptions.Prescription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return prescriptions.Prescription{}, prescriptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+prescriptionColumns+` FROM prescriptions WHERE id = $1`, id)
	p, err := scanPrescription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return prescriptions.Prescription{}, fmt.Errorf("prescription %q: %w", id, prescriptions.ErrNotFound)
	}
	return p, err
}

func scanPrescription(s scanner) (prescriptions.Prescription, error) {
	var (
		p        prescriptions.Prescription
		category string
		severity string
		meds     []byte
	)
	if err := s.Scan(
		&p.ID,
		&category,
		&p.Condition.EN,
		&p.Condition.TA,
		&severity,
		&p.DateIssued,
		&meds,
		&p.FollowUp.EN,
		&p.FollowUp.TA,
	); err != nil {
		return prescriptions.Prescription{}, err
	}
	p.Category = animals.OrGeneric(category)
	p.Severity = animals.Severity(severity)

	var rows []medicineRow
	if err := json.Unmarshal(meds, &rows); err != nil {
		return prescriptions.Prescription{}, fmt.Errorf("prescription %s medicines: %w", p.ID, err)
	}
	p.Medicines = make([]prescriptions.Medicine, 0, len(rows))
	for _, m := range rows {
		p.Medicines = append(p.Medicines, prescriptions.Medicine{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Duration:     m.Duration,
			Instructions: m.Instructions.text(),
			Precautions:  m.Precautions.text(),
		})
	}
	return p, nil
}
