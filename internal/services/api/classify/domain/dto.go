// Package domain holds DTOs for classify http and service contracts
package domain

// ClassifyInput is one classification request. Both fields are optional
// but at least one should carry signal; empty input yields the medium
// default rather than an error
type ClassifyInput struct {
	Text string `json:"text,omitempty" validate:"omitempty,max=10000" example:"person collapsed near the main stage, not breathing"`
	Type string `json:"type,omitempty" validate:"omitempty,max=100" example:"Medical"`
}

// ClassifyResult carries the arbitrated priority with its trace
type ClassifyResult struct {
	Priority          string   `json:"priority" example:"urgent"`
	Confidence        float64  `json:"confidence" example:"0.95"`
	Signals           []string `json:"signals"`
	Reasoning         string   `json:"reasoning" example:"matched urgent signals: not breathing"`
	ClassifierVersion int      `json:"classifier_version" example:"1"`
}

// BatchInput classifies several reports in one call
type BatchInput struct {
	Items []ClassifyInput `json:"items" validate:"required,min=1,max=500,dive"`
}
