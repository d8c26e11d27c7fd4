package models

// Regurg describes whether/how the baby regurgitated after a feeding.
type Regurg string

const (
	RegurgUnknown Regurg = "unknown"
	RegurgAir     Regurg = "air"
	RegurgMilk    Regurg = "milk"
	RegurgNo      Regurg = "no"
)

// ParseRegurg maps a stored value onto the enum, falling back to unknown.
func ParseRegurg(s string) Regurg {
	switch Regurg(s) {
	case RegurgAir, RegurgMilk, RegurgNo:
		return Regurg(s)
	default:
		return RegurgUnknown
	}
}

// Record is a single feeding event.
type Record struct {
	ID        int    // unique within one user's set, max+1 on insert
	UserID    int64  // telegram chat id of the owner
	Date      string // DD:MM:YYYY
	Time      string // HH:MM
	AmountML  int
	Regurg    Regurg
	CreatedAt string // yyyy-MM-dd HH:mm, audit only
}

// RecordPatch carries the optional fields of a partial update.
// Nil means "leave as is".
type RecordPatch struct {
	Date     *string
	Time     *string
	AmountML *int
	Regurg   *Regurg
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return p.Date == nil && p.Time == nil && p.AmountML == nil && p.Regurg == nil
}
