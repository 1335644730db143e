// Package dto holds the JSON bodies of the operational HTTP surface and the
// RFC 9457 Problem Details error responses.
package dto

// LanguagesResponse lists the languages failure codes are translated into.
type LanguagesResponse struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

// NewLanguagesResponse builds a LanguagesResponse from tags ordered default
// first.
func NewLanguagesResponse(tags []string) LanguagesResponse {
	resp := LanguagesResponse{Languages: tags}
	if resp.Languages == nil {
		resp.Languages = []string{}
	}
	if len(tags) > 0 {
		resp.Default = tags[0]
	}
	return resp
}

// CatalogResponse carries every failure code text of one language. Clients
// fetch it once and resolve the "api" codes of failed actions locally.
type CatalogResponse struct {
	Language string            `json:"language"`
	Count    int               `json:"count"`
	Messages map[string]string `json:"messages"`
}

// NewCatalogResponse builds a CatalogResponse for lang.
func NewCatalogResponse(lang string, messages map[string]string) CatalogResponse {
	if messages == nil {
		messages = map[string]string{}
	}
	return CatalogResponse{Language: lang, Count: len(messages), Messages: messages}
}

// MessageResponse is the text of a single failure code.
type MessageResponse struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// HealthResponse is the body of both probes. Checks and Failing are only set
// on readiness; Failing lists the names of failed checks in order.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Failing []string          `json:"failing,omitempty"`
}
