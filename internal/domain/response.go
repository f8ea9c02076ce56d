package domain

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Record is a serialized area or country.
type Record = map[string]interface{}

// Page is the envelope returned for collection routes.
type Page struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []Record `json:"results"`
}
