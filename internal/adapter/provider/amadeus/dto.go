package amadeus

// tokenResponse is the body returned by the OAuth2 token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// offersResponse is the body returned by the flight-offers search endpoint.
type offersResponse struct {
	Data []offerDTO `json:"data"`
}

type offerDTO struct {
	ID                     string         `json:"id"`
	Price                  priceDTO       `json:"price"`
	Itineraries            []itineraryDTO `json:"itineraries"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
}

// priceDTO carries amounts as decimal strings, e.g. "275.50".
type priceDTO struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type itineraryDTO struct {
	Duration string       `json:"duration"`
	Segments []segmentDTO `json:"segments"`
}

type segmentDTO struct {
	Departure   endpointDTO `json:"departure"`
	Arrival     endpointDTO `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

// endpointDTO times are local to the airport and carry no offset.
type endpointDTO struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// locationsResponse is the body returned by the reference-data locations endpoint.
type locationsResponse struct {
	Data []locationDTO `json:"data"`
}

type locationDTO struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	SubType  string      `json:"subType"`
	Name     string      `json:"name"`
	IataCode string      `json:"iataCode"`
	Address  addressDTO  `json:"address"`
	GeoCode  *geoCodeDTO `json:"geoCode,omitempty"`
}

type addressDTO struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName,omitempty"`
	StateCode   string `json:"stateCode,omitempty"`
}

type geoCodeDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// errorResponse is the provider's error envelope.
type errorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
