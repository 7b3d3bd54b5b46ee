package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vet-care-assistant/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

const vetColumns = `
	id, name_en, name_ta, address_en, address_ta, phone,
	distance_km, rating, open_now, emergency,
	specialties_en, specialties_ta
`

func (r *VetsRepo) List(ctx context.Context) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vetColumns+` FROM vets ORDER BY distance_km, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0, 8)
	for rows.Next() {
		v, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Vet{}, vets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+vetColumns+` FROM vets WHERE id = $1`, id)
	v, err := scanVet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vets.Vet{}, fmt.Errorf("vet %q: %w", id, vets.ErrNotFound)
	}
	return v, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVet(s scanner) (vets.Vet, error) {
	var (
		v      vets.Vet
		specEN []byte
		specTA []byte
	)
	if err := s.Scan(
		&v.ID,
		&v.Name.EN,
		&v.Name.TA,
		&v.Address.EN,
		&v.Address.TA,
		&v.Phone,
		&v.DistanceKm,
		&v.Rating,
		&v.OpenNow,
		&v.Emergency,
		&specEN,
		&specTA,
	); err != nil {
		return vets.Vet{}, err
	}

	if err := json.Unmarshal(specEN, &v.Specialties.EN); err != nil {
		return vets.Vet{}, fmt.Errorf("vet %s specialties_en: %w", v.ID, err)
	}
	if err := json.Unmarshal(specTA, &v.Specialties.TA); err != nil {
		return vets.Vet{}, fmt.Errorf("vet %s specialties_ta: %w", v.ID, err)
	}
	return v, nil
}
