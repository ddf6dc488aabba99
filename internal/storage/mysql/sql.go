package mysql

const insertPlacesPrefix = "INSERT INTO places\n" +
	"  (id, name, address, lat, lng, rating, review_count, price_level, place_type, open_now, photo_ref, source, phone, website, opening_hours, raw)\n" +
	"VALUES "

const placeRowPlaceholders = "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)"

// Search snapshots carry no contact details; COALESCE keeps what a details
// ingest stored earlier.
const insertPlacesOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  name          = VALUES(name),\n" +
	"  address       = COALESCE(VALUES(address), places.address),\n" +
	"  lat           = COALESCE(VALUES(lat), places.lat),\n" +
	"  lng           = COALESCE(VALUES(lng), places.lng),\n" +
	"  rating        = COALESCE(VALUES(rating), places.rating),\n" +
	"  review_count  = COALESCE(VALUES(review_count), places.review_count),\n" +
	"  price_level   = COALESCE(VALUES(price_level), places.price_level),\n" +
	"  place_type    = COALESCE(VALUES(place_type), places.place_type),\n" +
	"  open_now      = VALUES(open_now),\n" +
	"  photo_ref     = COALESCE(VALUES(photo_ref), places.photo_ref),\n" +
	"  source        = VALUES(source),\n" +
	"  phone         = COALESCE(VALUES(phone), places.phone),\n" +
	"  website       = COALESCE(VALUES(website), places.website),\n" +
	"  opening_hours = COALESCE(VALUES(opening_hours), places.opening_hours),\n" +
	"  raw           = COALESCE(VALUES(raw), places.raw),\n" +
	"  updated_at    = CURRENT_TIMESTAMP\n"

const insertMissSQL = `
INSERT INTO ingest_misses (query, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE reason = VALUES(reason), seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const placeColumns = `
  id, name, address, lat, lng, rating, review_count, price_level,
  place_type, open_now, photo_ref, source, phone, website, opening_hours`

const getPlaceSQL = `SELECT` + placeColumns + `
FROM places
WHERE id = ?`

// Insertion order is the catalog order the homepage ranks from.
const listPlacesSQL = `SELECT` + placeColumns + `
FROM places
ORDER BY created_at, id`

const listCommunitySQL = `SELECT` + placeColumns + `
FROM places
WHERE source = 'LOCAL'
ORDER BY created_at, id`
