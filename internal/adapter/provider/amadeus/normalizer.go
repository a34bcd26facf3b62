package amadeus

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// normalize converts provider offers to domain quotes, skipping offers that cannot be converted.
func normalize(offers []offerDTO, fallbackCurrency string) []domain.FlightQuote {
	result := make([]domain.FlightQuote, 0, len(offers))

	for _, o := range offers {
		quote, err := normalizeOffer(o, fallbackCurrency)
		if err != nil {
			continue
		}
		result = append(result, quote)
	}

	return result
}

// normalizeOffer converts a single offer. The grand total wins over the base total.
func normalizeOffer(o offerDTO, fallbackCurrency string) (domain.FlightQuote, error) {
	if len(o.Itineraries) == 0 {
		return domain.FlightQuote{}, errors.New("offer has no itineraries")
	}

	rawPrice := o.Price.GrandTotal
	if rawPrice == "" {
		rawPrice = o.Price.Total
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
	if err != nil {
		return domain.FlightQuote{}, fmt.Errorf("failed to parse price %q: %w", rawPrice, err)
	}

	currency := o.Price.Currency
	if currency == "" {
		currency = fallbackCurrency
	}

	itineraries := make([]domain.Itinerary, 0, len(o.Itineraries))
	for i, it := range o.Itineraries {
		normalized, err := normalizeItinerary(it)
		if err != nil {
			return domain.FlightQuote{}, fmt.Errorf("itinerary %d: %w", i, err)
		}
		itineraries = append(itineraries, normalized)
	}

	return domain.FlightQuote{
		ID: o.ID,
		Price: domain.Money{
			Amount:   amount,
			Currency: currency,
		},
		Itineraries:        itineraries,
		ValidatingAirlines: o.ValidatingAirlineCodes,
	}, nil
}

func normalizeItinerary(it itineraryDTO) (domain.Itinerary, error) {
	if len(it.Segments) == 0 {
		return domain.Itinerary{}, errors.New("no segments")
	}

	segments := make([]domain.Segment, 0, len(it.Segments))
	for _, s := range it.Segments {
		departure, err := timeutil.ParseLocalDateTime(s.Departure.At)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("failed to parse departure time: %w", err)
		}

		arrival, err := timeutil.ParseLocalDateTime(s.Arrival.At)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("failed to parse arrival time: %w", err)
		}

		segments = append(segments, domain.Segment{
			Departure:    domain.SegmentPoint{AirportCode: s.Departure.IataCode, At: departure},
			Arrival:      domain.SegmentPoint{AirportCode: s.Arrival.IataCode, At: arrival},
			CarrierCode:  s.CarrierCode,
			FlightNumber: s.Number,
		})
	}

	return domain.Itinerary{
		Duration: it.Duration,
		Segments: segments,
	}, nil
}

// normalizeLocations converts locations, keeping only those in stateCode when it is set.
func normalizeLocations(locations []locationDTO, stateCode string, limit int) []domain.AirportInfo {
	result := make([]domain.AirportInfo, 0, len(locations))

	for _, l := range locations {
		if l.IataCode == "" {
			continue
		}
		if stateCode != "" && !strings.EqualFold(l.Address.StateCode, stateCode) {
			continue
		}

		info := domain.AirportInfo{
			Code:        l.IataCode,
			Name:        formatAirportName(l.Name, l.Address.CityName),
			City:        l.Address.CityName,
			CountryCode: l.Address.CountryCode,
			StateCode:   l.Address.StateCode,
		}
		if l.GeoCode != nil {
			info.Latitude = l.GeoCode.Latitude
			info.Longitude = l.GeoCode.Longitude
		}
		result = append(result, info)

		if limit > 0 && len(result) == limit {
			break
		}
	}

	return result
}

// formatAirportName title-cases the provider's upper-case names, falling back to the city.
func formatAirportName(name, city string) string {
	if name == "" {
		name = city
	}
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// errorDetail extracts a short message from an error body, or the raw body when it is not JSON.
func errorDetail(body []byte) string {
	var env errorResponse
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		e := env.Errors[0]
		switch {
		case e.Title == "":
			return e.Detail
		case e.Detail == "":
			return e.Title
		default:
			return e.Title + ": " + e.Detail
		}
	}

	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		n := maxLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	return s
}
