package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Actor references are party slots rather than user IDs in this domain.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     Party     `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy Party     `json:"lastUpdatedBy"`
}
