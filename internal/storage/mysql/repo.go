package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"eatsandthinks/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// UpsertPlaces writes all places in one statement. Duplicate IDs within the
// batch collapse onto the last one.
func (r *Repo) UpsertPlaces(ctx context.Context, ps []domain.Place) error {
	if len(ps) == 0 {
		return nil
	}
	values := make([]string, 0, len(ps))
	args := make([]any, 0, len(ps)*16) // 16 params per row
	for _, p := range ps {
		var hours []byte
		if len(p.OpeningHours) > 0 {
			hours, _ = json.Marshal(p.OpeningHours)
		}
		src := p.Source
		if src == "" {
			src = domain.SourceGoogle
		}
		values = append(values, placeRowPlaceholders)
		args = append(args,
			p.ID,
			p.Name,
			nullIfEmpty(p.Address),
			valF64(p.Lat),
			valF64(p.Lng),
			valF64(p.Rating),
			valInt(p.ReviewCount),
			valInt(p.PriceLevel),
			valStr(p.Type),
			valBool(p.OpenNow),
			valStr(p.PhotoRef),
			src,
			valStr(p.Phone),
			valStr(p.Website),
			valJSON(hours),
			valJSON(p.RawJSON),
		)
	}
	sqlStr := insertPlacesPrefix + strings.Join(values, ",") + insertPlacesOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, query string, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, query, status, reason)
	return err
}

func (r *Repo) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, getPlaceSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Place, error) {
	return r.list(ctx, listPlacesSQL)
}

func (r *Repo) ListCommunity(ctx context.Context) ([]domain.Place, error) {
	return r.list(ctx, listCommunitySQL)
}

func (r *Repo) list(ctx context.Context, q string) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlace(s scanner) (domain.Place, error) {
	var p domain.Place
	var address, typ, photo, phone, website sql.NullString
	var lat, lng, rating sql.NullFloat64
	var reviews, price sql.NullInt64
	var open sql.NullBool
	var hours []byte

	if err := s.Scan(
		&p.ID, &p.Name, &address,
		&lat, &lng, &rating,
		&reviews, &price,
		&typ, &open, &photo, &p.Source,
		&phone, &website, &hours,
	); err != nil {
		return domain.Place{}, err
	}

	p.Address = address.String
	p.Lat = nullF64(lat)
	p.Lng = nullF64(lng)
	p.Rating = nullF64(rating)
	p.ReviewCount = nullInt(reviews)
	p.PriceLevel = nullInt(price)
	p.Type = nullStr(typ)
	p.PhotoRef = nullStr(photo)
	p.Phone = nullStr(phone)
	p.Website = nullStr(website)
	if open.Valid {
		b := open.Bool
		p.OpenNow = &b
	}
	if len(hours) > 0 {
		_ = json.Unmarshal(hours, &p.OpeningHours)
	}
	return p, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullF64(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
