package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Credentials accepted by AmadeusServer.
const (
	AmadeusKey    = "test-key"
	AmadeusSecret = "test-secret"
	AmadeusToken  = "test-token"
)

// Offer describes one flight offer served by AmadeusServer. Times are
// derived from the requested dates, so one Offer serves any meeting.
type Offer struct {
	Price   string
	Carrier string
	Number  string

	// Stops adds connections through DEN to the outbound leg
	Stops int
}

// Location is an airport served by the reference-data endpoint.
type Location struct {
	Code      string
	Name      string
	City      string
	Country   string
	State     string
	Latitude  float64
	Longitude float64
}

// AmadeusServer is an in-process stand-in for the Amadeus self-service API.
// It implements the token, flight-offers and airport locations endpoints.
type AmadeusServer struct {
	*httptest.Server

	mu          sync.Mutex
	offers      map[string][]Offer
	rawOffers   map[string][]byte
	throttle    map[string]int
	locations   []Location
	rejectAuth  bool
	tokenCalls  int
	offerCalls  map[string]int
	offerParams []url.Values
}

// NewAmadeusServer starts a fake provider. Call Close when done.
func NewAmadeusServer() *AmadeusServer {
	s := &AmadeusServer{
		offers:     make(map[string][]Offer),
		rawOffers:  make(map[string][]byte),
		throttle:   make(map[string]int),
		offerCalls: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", s.handleToken)
	mux.HandleFunc("/v2/shopping/flight-offers", s.handleOffers)
	mux.HandleFunc("/v1/reference-data/locations", s.handleLocations)
	s.Server = httptest.NewServer(mux)

	return s
}

// WithOffers configures the offers for origin to destination.
func (s *AmadeusServer) WithOffers(origin, destination string, offers ...Offer) *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[origin+"-"+destination] = offers
	return s
}

// WithRawOffers serves body verbatim for origin to destination, ignoring dates and price limits.
func (s *AmadeusServer) WithRawOffers(origin, destination string, body []byte) *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawOffers[origin+"-"+destination] = body
	return s
}

// WithThrottle makes the next n offer requests for the route answer 429.
func (s *AmadeusServer) WithThrottle(origin, destination string, n int) *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.throttle[origin+"-"+destination] = n
	return s
}

// WithLocations configures the airports returned by keyword search.
func (s *AmadeusServer) WithLocations(locations ...Location) *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = locations
	return s
}

// RejectAuth makes the token endpoint answer 401.
func (s *AmadeusServer) RejectAuth() *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectAuth = true
	return s
}

// TokenCalls is the number of token requests received.
func (s *AmadeusServer) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenCalls
}

// OfferCalls is the number of offer requests received for a route.
func (s *AmadeusServer) OfferCalls(origin, destination string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offerCalls[origin+"-"+destination]
}

// TotalOfferCalls is the number of offer requests received.
func (s *AmadeusServer) TotalOfferCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.offerParams)
}

// OfferParams returns the query parameters of every offer request, in order.
func (s *AmadeusServer) OfferParams() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]url.Values, len(s.offerParams))
	copy(out, s.offerParams)
	return out
}

func (s *AmadeusServer) handleToken(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.tokenCalls++
	reject := s.rejectAuth
	s.mu.Unlock()

	if r.Method != http.MethodPost || r.ParseForm() != nil {
		writeError(w, http.StatusBadRequest, "invalid token request")
		return
	}
	if reject || r.PostForm.Get("client_id") != AmadeusKey || r.PostForm.Get("client_secret") != AmadeusSecret {
		writeError(w, http.StatusUnauthorized, "invalid_client")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": AmadeusToken,
		"expires_in":   1799,
		"token_type":   "Bearer",
	})
}

func (s *AmadeusServer) handleOffers(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+AmadeusToken {
		writeError(w, http.StatusUnauthorized, "invalid access token")
		return
	}

	q := r.URL.Query()
	route := q.Get("originLocationCode") + "-" + q.Get("destinationLocationCode")

	s.mu.Lock()
	s.offerCalls[route]++
	s.offerParams = append(s.offerParams, q)
	throttled := s.throttle[route] > 0
	if throttled {
		s.throttle[route]--
	}
	offers := s.offers[route]
	raw := s.rawOffers[route]
	s.mu.Unlock()

	if throttled {
		writeError(w, http.StatusTooManyRequests, "Too many requests")
		return
	}
	if raw != nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
		return
	}

	depart, err1 := time.Parse("2006-01-02", q.Get("departureDate"))
	ret, err2 := time.Parse("2006-01-02", q.Get("returnDate"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	maxPrice, _ := strconv.ParseFloat(q.Get("maxPrice"), 64)

	data := make([]map[string]any, 0, len(offers))
	for i, o := range offers {
		price, _ := strconv.ParseFloat(o.Price, 64)
		if maxPrice > 0 && price > maxPrice {
			continue
		}
		data = append(data, offerJSON(strconv.Itoa(i+1), q.Get("originLocationCode"), q.Get("destinationLocationCode"), o, depart, ret))
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (s *AmadeusServer) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+AmadeusToken {
		writeError(w, http.StatusUnauthorized, "invalid access token")
		return
	}

	q := r.URL.Query()
	keyword := strings.ToUpper(q.Get("keyword"))

	s.mu.Lock()
	locations := s.locations
	s.mu.Unlock()

	data := make([]map[string]any, 0, len(locations))
	for _, l := range locations {
		if keyword != "" && !strings.Contains(strings.ToUpper(l.City+" "+l.Name+" "+l.Code), keyword) {
			continue
		}
		data = append(data, map[string]any{
			"type":     "location",
			"subType":  "AIRPORT",
			"name":     strings.ToUpper(l.Name),
			"iataCode": l.Code,
			"address": map[string]any{
				"cityName":    strings.ToUpper(l.City),
				"countryCode": l.Country,
				"stateCode":   l.State,
			},
			"geoCode": map[string]any{"latitude": l.Latitude, "longitude": l.Longitude},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func offerJSON(id, origin, destination string, o Offer, depart, ret time.Time) map[string]any {
	layout := "2006-01-02T15:04:05"
	out := depart.Add(8 * time.Hour)

	var outbound []map[string]any
	point := origin
	for i := 0; i <= o.Stops; i++ {
		next := destination
		if i < o.Stops {
			next = "DEN"
		}
		leave := out.Add(time.Duration(i) * 3 * time.Hour)
		outbound = append(outbound, map[string]any{
			"departure":   map[string]any{"iataCode": point, "at": leave.Format(layout)},
			"arrival":     map[string]any{"iataCode": next, "at": leave.Add(2 * time.Hour).Format(layout)},
			"carrierCode": o.Carrier,
			"number":      o.Number,
		})
		point = next
	}

	back := ret.Add(17 * time.Hour)
	inbound := []map[string]any{{
		"departure":   map[string]any{"iataCode": destination, "at": back.Format(layout)},
		"arrival":     map[string]any{"iataCode": origin, "at": back.Add(4 * time.Hour).Format(layout)},
		"carrierCode": o.Carrier,
		"number":      o.Number + "1",
	}}

	return map[string]any{
		"id": id,
		"price": map[string]any{
			"currency":   "USD",
			"total":      o.Price,
			"grandTotal": o.Price,
		},
		"itineraries": []map[string]any{
			{"duration": "PT" + strconv.Itoa(2+3*o.Stops) + "H", "segments": outbound},
			{"duration": "PT4H", "segments": inbound},
		},
		"validatingAirlineCodes": []string{o.Carrier},
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"status": status, "title": http.StatusText(status), "detail": detail}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
