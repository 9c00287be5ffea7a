package models

// LocalizedText is a bilingual value rendered as {"sr": ..., "en": ...}.
// It is persisted as two separate columns with _sr/_en suffixes; repositories
// split and reassemble it at the row boundary.
type LocalizedText struct {
	Sr string `json:"sr"`
	En string `json:"en"`
}
