package model

import "encoding/json"

// Survey is submitted wholesale to the recommendation endpoint.
type Survey struct {
	Genre        string `json:"genre"`
	Length       string `json:"length"`
	Series       string `json:"series"`
	SimilarBooks string `json:"similarBooks"`
	Mood         string `json:"mood"`
}

type RecommendationsResponse struct {
	Recommendations []json.RawMessage `json:"recommendations"`
	Survey          Survey            `json:"survey"`
}
