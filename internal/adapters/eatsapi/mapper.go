package eatsapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"eatsandthinks/internal/domain"
)

/********** alias registry (single source of truth) **********/

// The backend serves DTOs with English keys; entity dumps and older
// endpoints use the Spanish column names.
var placeAliases = map[string][]string{
	"id":      {"placeId", "place_id"},
	"name":    {"name", "nombre"},
	"address": {"formattedAddress", "formatted_address", "direccion", "address", "vicinity"},
	"lat":     {"lat", "latitud", "geometry.location.lat", "location.lat"},
	"lng":     {"lng", "longitud", "lon", "geometry.location.lng", "location.lng"},
	"rating":  {"rating", "valoracion"},
	"reviews": {"userRatingsTotal", "user_ratings_total", "totalValoraciones"},
	"price":   {"priceLevel", "price_level", "precioNivel"},
	"type":    {"type", "tipo", "primaryType"},
	"types":   {"types", "tipos"},
	"open":    {"openNow", "abierto", "opening_hours.open_now"},
	"photo":   {"photoRef", "fotoRef", "photo_reference"},
	"source":  {"source", "fuente"},
	"phone":   {"phoneNumber", "formatted_phone_number", "telefono"},
	"website": {"website", "sitioWeb"},
	"hours":   {"openingHours", "opening_hours.weekday_text", "horario"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstNonEmpty: first non-empty string for a named alias set.
func firstNonEmpty(m map[string]any, key string) *string {
	for _, p := range placeAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

// getFloatFlexible: number from several paths (float64/int/string like "4,5").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstIntFlexible: int from several paths (float64/int/string).
func firstIntFlexible(m map[string]any, paths ...string) *int {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int(v)
			return &x
		case int:
			x := v
			return &x
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				return &n
			}
		}
	}
	return nil
}

// firstBoolFlexible accepts JSON booleans and "true"/"false" strings.
func firstBoolFlexible(m map[string]any, paths ...string) *bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			b := v
			return &b
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return &b
			}
		}
	}
	return nil
}

// firstSliceStrings: accept []any with either strings or {url/src/name}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t != "" {
						out = append(out, t)
					}
				case map[string]any:
					if n, ok := t["name"].(string); ok && n != "" {
						out = append(out, n)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// LocalIDPrefix marks operator-created places, which have no Google place id.
const LocalIDPrefix = "local-"

// placeID prefers the Google place id; operator-created places only carry
// the numeric database id.
func placeID(m map[string]any) string {
	if s := firstNonEmpty(m, "id"); s != nil {
		return *s
	}
	switch v := lookupAny(m, "id").(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return LocalIDPrefix + strconv.FormatInt(int64(v), 10)
	}
	return ""
}

/********** place mapper **********/

func mapPlace(p map[string]any) domain.Place {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).
			Str("context", "mapPlace").
			Msg("failed to marshal place to JSON")
	}

	out := domain.Place{
		ID:           placeID(p),
		Lat:          getFloatFlexible(p, placeAliases["lat"]...),
		Lng:          getFloatFlexible(p, placeAliases["lng"]...),
		Rating:       getFloatFlexible(p, placeAliases["rating"]...),
		ReviewCount:  firstIntFlexible(p, placeAliases["reviews"]...),
		PriceLevel:   firstIntFlexible(p, placeAliases["price"]...),
		OpenNow:      firstBoolFlexible(p, placeAliases["open"]...),
		PhotoRef:     firstNonEmpty(p, "photo"),
		Phone:        firstNonEmpty(p, "phone"),
		Website:      firstNonEmpty(p, "website"),
		OpeningHours: firstSliceStrings(p, placeAliases["hours"]...),
		RawJSON:      raw,
	}
	if s := firstNonEmpty(p, "name"); s != nil {
		out.Name = *s
	}
	if s := firstNonEmpty(p, "address"); s != nil {
		out.Address = *s
	}

	// Type: explicit field first, else the first entry of a Google types list.
	out.Type = firstNonEmpty(p, "type")
	if out.Type == nil {
		if ts := firstSliceStrings(p, placeAliases["types"]...); len(ts) > 0 {
			t := ts[0]
			out.Type = &t
		}
	}

	if s := firstNonEmpty(p, "source"); s != nil {
		out.Source = strings.ToUpper(*s)
	}
	return out
}

// mapPlaces drops entries without any usable identifier.
func mapPlaces(in []map[string]any) []domain.Place {
	out := make([]domain.Place, 0, len(in))
	for _, m := range in {
		p := mapPlace(m)
		if p.ID == "" {
			log.Warn().Str("context", "mapPlaces").Str("name", p.Name).Msg("skipping place without id")
			continue
		}
		out = append(out, p)
	}
	return out
}
