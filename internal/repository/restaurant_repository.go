package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ristoranti/ristoranti-backend/internal/model"
)

// RestaurantRepo serves the joined restaurant projection used by every
// listing and detail endpoint.  The projection spans the whole reference
// hierarchy (municipality, province, region) plus the owning admin,
// company, entrepreneur and one image per restaurant.  The join fans out
// across images, menus and dishes, so every query carries GROUP BY l.id to
// collapse the fan-out back to one row per restaurant.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo returns a new RestaurantRepo bound to the given database.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{db: db} }

// RestaurantRow is the joined projection returned to clients.  The JSON
// keys keep the historical column aliases the frontend binds to.  The
// admin password column is deliberately absent from the projection.
type RestaurantRow struct {
	ID                  uint64  `json:"id_locale"`
	Name                string  `json:"nome_locale"`
	Road                string  `json:"via_locale"`
	HouseNumber         string  `json:"civico_locale"`
	MaxSeats            float64 `json:"posti_max_locale"`
	Description         string  `json:"descrizione_locale"`
	Banner              string  `json:"banner_locale"`
	MunicipalityID      uint64  `json:"id_comune"`
	Municipality        string  `json:"nome_comune"`
	ProvinceID          uint64  `json:"id_provincia"`
	Province            string  `json:"nome_provincia"`
	ProvinceCode        string  `json:"sigla_provincia"`
	RegionID            uint64  `json:"id_regione"`
	Region              string  `json:"nome_regione"`
	AdminTaxCode        string  `json:"cf_admin"`
	AdminName           string  `json:"nome_admin"`
	AdminSurname        string  `json:"cognome_admin"`
	AdminEmail          string  `json:"email_admin"`
	CompanyVAT          string  `json:"piva_azienda"`
	CompanyName         string  `json:"nome_azienda"`
	EntrepreneurTaxCode string  `json:"cf_imprenditore"`
	EntrepreneurName    string  `json:"nome_imprenditore"`
	EntrepreneurSurname string  `json:"cognome_imprenditore"`
	EntrepreneurPhone   string  `json:"telefono_imprenditore"`
	ImageURL            string  `json:"img_url"`
}

// baseSelect is the shared joined projection.  Callers append WHERE
// conditions and must close with GROUP BY l.id.
const baseSelect = `SELECT
		l.id, l.nome, l.via, l.civico, l.posti_max, l.descrizione, l.banner,
		c.id, c.nome,
		p.id, p.nome, p.sigla,
		r.id, r.nome,
		a.cf, a.nome, a.cognome, a.email,
		az.piva, az.nome,
		i.cf, i.nome, i.cognome, i.telefono,
		img.url
	FROM locale l
	INNER JOIN comuni c ON c.id = l.id_comune
	INNER JOIN province p ON p.id = c.id_provincia
	INNER JOIN regioni r ON r.id = p.id_regione
	INNER JOIN admin a ON a.id_locale = l.id
	INNER JOIN azienda az ON az.piva = l.piva_azienda
	INNER JOIN imprenditore i ON i.cf = az.cf_imprenditore
	INNER JOIN imgs img ON img.id_locale = l.id
	INNER JOIN menu m ON m.id_locale = l.id
	INNER JOIN piatto pi ON pi.id_menu = m.id`

// scanRow scans one projection row from either *sql.Row or *sql.Rows.
func scanRow(s interface{ Scan(...any) error }) (RestaurantRow, error) {
	var d RestaurantRow
	err := s.Scan(
		&d.ID, &d.Name, &d.Road, &d.HouseNumber, &d.MaxSeats, &d.Description, &d.Banner,
		&d.MunicipalityID, &d.Municipality,
		&d.ProvinceID, &d.Province, &d.ProvinceCode,
		&d.RegionID, &d.Region,
		&d.AdminTaxCode, &d.AdminName, &d.AdminSurname, &d.AdminEmail,
		&d.CompanyVAT, &d.CompanyName,
		&d.EntrepreneurTaxCode, &d.EntrepreneurName, &d.EntrepreneurSurname, &d.EntrepreneurPhone,
		&d.ImageURL,
	)
	return d, err
}

// collect drains a joined-projection result set into a slice.
func collect(rows *sql.Rows) ([]RestaurantRow, error) {
	defer rows.Close()
	out := make([]RestaurantRow, 0)
	for rows.Next() {
		d, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns the full joined projection, one row per restaurant.
func (r *RestaurantRepo) ListAll(ctx context.Context) ([]RestaurantRow, error) {
	rows, err := r.db.QueryContext(ctx, baseSelect+" GROUP BY l.id")
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// GetByID returns the projection for a single restaurant, or
// ErrRestaurantNotFound when the id does not exist.
func (r *RestaurantRepo) GetByID(ctx context.Context, id uint64) (RestaurantRow, error) {
	row := r.db.QueryRowContext(ctx, baseSelect+" WHERE l.id = ? GROUP BY l.id", id)
	d, err := scanRow(row)
	if err == sql.ErrNoRows {
		return RestaurantRow{}, ErrRestaurantNotFound
	}
	return d, err
}

// SearchFilters carries the optional free-text filters of the search
// endpoint.  Every non-empty field becomes a case-insensitive substring
// condition; the conditions are combined with AND.
type SearchFilters struct {
	Restaurant   string
	Municipality string
	Province     string
	Region       string
}

// Search returns restaurants matching every supplied substring filter.
// With no filters the full set is returned.
func (r *RestaurantRepo) Search(ctx context.Context, f SearchFilters) ([]RestaurantRow, error) {
	where := []string{}
	args := []any{}
	if f.Restaurant != "" {
		where = append(where, "LOWER(l.nome) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Restaurant)+"%")
	}
	if f.Municipality != "" {
		where = append(where, "LOWER(c.nome) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Municipality)+"%")
	}
	if f.Province != "" {
		where = append(where, "LOWER(p.nome) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Province)+"%")
	}
	if f.Region != "" {
		where = append(where, "LOWER(r.nome) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Region)+"%")
	}

	q := baseSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " GROUP BY l.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// Nearest returns restaurants located exactly in the supplied village,
// county and/or state.  Unlike Search this matches whole names, not
// substrings: a client asking for "Como" must not receive "Comacchio".
// Empty fields are skipped; with no criteria the full set is returned.
func (r *RestaurantRepo) Nearest(ctx context.Context, village, county, state string) ([]RestaurantRow, error) {
	where := []string{}
	args := []any{}
	if village != "" {
		where = append(where, "c.nome = ?")
		args = append(args, village)
	}
	if county != "" {
		where = append(where, "p.nome = ?")
		args = append(args, county)
	}
	if state != "" {
		where = append(where, "r.nome = ?")
		args = append(args, state)
	}

	q := baseSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " GROUP BY l.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// Others returns restaurants in the same county or village while excluding
// the given restaurant ids (typically those the client already displays).
// The exclusion list is rendered as a NOT IN placeholder list; when it is
// empty the clause is omitted.
func (r *RestaurantRepo) Others(ctx context.Context, county, village string, exclude []uint64) ([]RestaurantRow, error) {
	q := baseSelect + " WHERE (p.nome = ? OR c.nome = ?)"
	args := []any{county, village}
	if len(exclude) > 0 {
		placeholders := make([]string, 0, len(exclude))
		for _, id := range exclude {
			placeholders = append(placeholders, "?")
			args = append(args, id)
		}
		q += " AND l.id NOT IN (" + strings.Join(placeholders, ",") + ")"
	}
	q += " GROUP BY l.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// MaxSeats returns the seating capacity of a restaurant, or
// ErrRestaurantNotFound when the id does not exist.  The availability
// endpoint uses this to distinguish a missing restaurant from one that
// simply has no reservations yet.
func (r *RestaurantRepo) MaxSeats(ctx context.Context, id uint64) (int64, error) {
	var max int64
	err := r.db.QueryRowContext(ctx,
		"SELECT posti_max FROM locale WHERE id = ? LIMIT 1", id).Scan(&max)
	if err == sql.ErrNoRows {
		return 0, ErrRestaurantNotFound
	}
	return max, err
}

// ListImages returns the gallery images of a restaurant.
func (r *RestaurantRepo) ListImages(ctx context.Context, id uint64) ([]model.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, id_locale, url FROM imgs WHERE id_locale = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Image, 0)
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.RestaurantID, &img.URL); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RestaurantUpdate carries the optional fields of a partial restaurant
// update.  Nil pointers leave the corresponding column untouched.
type RestaurantUpdate struct {
	Name           *string
	Road           *string
	HouseNumber    *string
	MaxSeats       *int64
	MunicipalityID *uint64
	Description    *string
	Banner         *string
}

// Update applies a partial field update to a restaurant.  It returns
// ErrRestaurantNotFound when the id does not exist and is a no-op when no
// field is supplied.
func (r *RestaurantRepo) Update(ctx context.Context, id uint64, u RestaurantUpdate) error {
	set := []string{}
	args := []any{}
	if u.Name != nil {
		set = append(set, "nome = ?")
		args = append(args, *u.Name)
	}
	if u.Road != nil {
		set = append(set, "via = ?")
		args = append(args, *u.Road)
	}
	if u.HouseNumber != nil {
		set = append(set, "civico = ?")
		args = append(args, *u.HouseNumber)
	}
	if u.MaxSeats != nil {
		set = append(set, "posti_max = ?")
		args = append(args, *u.MaxSeats)
	}
	if u.MunicipalityID != nil {
		set = append(set, "id_comune = ?")
		args = append(args, *u.MunicipalityID)
	}
	if u.Description != nil {
		set = append(set, "descrizione = ?")
		args = append(args, *u.Description)
	}
	if u.Banner != nil {
		set = append(set, "banner = ?")
		args = append(args, *u.Banner)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		"UPDATE locale SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is also 0 when the update writes identical values,
		// so probe existence before reporting not found.
		var one int
		err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM locale WHERE id = ? LIMIT 1", id).Scan(&one)
		if err == sql.ErrNoRows {
			return ErrRestaurantNotFound
		}
		return err
	}
	return nil
}
