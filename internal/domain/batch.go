package domain

// UnitError reports one scope unit a batch operation could not process.
type UnitError struct {
	Level  ScopeLevel `json:"level"`
	UnitID uint       `json:"unit_id"`
	Reason string     `json:"reason"`
}

// BulkOutcome is the per-unit report of a bulk generation run. Every
// resolved unit lands in exactly one bucket, so
// Created + Skipped + len(Errors) equals the number of resolved units.
type BulkOutcome struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Errors  []UnitError `json:"errors"`
}

// StatusOutcome reports one election in a bulk status transition.
type StatusOutcome struct {
	ElectionID uint   `json:"election_id"`
	Updated    bool   `json:"updated"`
	Reason     string `json:"reason,omitempty"`
}

type BulkStatusOutcome struct {
	Updated  int             `json:"updated"`
	Failed   int             `json:"failed"`
	Outcomes []StatusOutcome `json:"outcomes"`
}
