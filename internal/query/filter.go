// Package query resolves list-endpoint query parameters into a single
// SQL predicate. Filters are never combined: each resolver walks an
// ordered table and the first applicable rule wins, so a request sending
// several filters gets exactly one of them applied.
package query

// Predicate is one WHERE clause with its bind arguments, ready to hand
// to gorm's Where. Name identifies which rule matched, mostly for tests
// and audit metadata.
type Predicate struct {
	Name string
	Expr string
	Args []any
}

type rule[P any] struct {
	name       string
	applicable func(P) bool
	build      func(P) *Predicate
}

func resolve[P any](rules []rule[P], p P) *Predicate {
	for _, r := range rules {
		if r.applicable(p) {
			pred := r.build(p)
			pred.Name = r.name
			return pred
		}
	}
	return nil
}

// ClientFilterParams carries the raw optional query parameters of
// GET /clients. Nil means the parameter was absent.
type ClientFilterParams struct {
	FirstName *string
	LastName  *string
	Zipcode   *string
}

var clientRules = []rule[ClientFilterParams]{
	{
		name: "name",
		applicable: func(p ClientFilterParams) bool {
			return p.FirstName != nil && p.LastName != nil
		},
		build: func(p ClientFilterParams) *Predicate {
			return &Predicate{
				Expr: "first_name = ? AND last_name = ?",
				Args: []any{*p.FirstName, *p.LastName},
			}
		},
	},
	{
		name: "zipcode",
		applicable: func(p ClientFilterParams) bool {
			return p.Zipcode != nil
		},
		build: func(p ClientFilterParams) *Predicate {
			return &Predicate{Expr: "zipcode = ?", Args: []any{*p.Zipcode}}
		},
	},
}

// ResolveClientFilter returns the predicate for a client listing, or nil
// when no filter applies. Priority: first_name+last_name, then zipcode.
func ResolveClientFilter(p ClientFilterParams) *Predicate {
	return resolve(clientRules, p)
}

// ShiftFilterParams carries the raw optional query parameters of
// GET /shifts.
type ShiftFilterParams struct {
	ClientID  *uint
	ServiceID *uint
	Zipcode   *string
	Available *bool
	MinHours  *int
	MaxHours  *int
}

var shiftRules = []rule[ShiftFilterParams]{
	{
		name:       "client",
		applicable: func(p ShiftFilterParams) bool { return p.ClientID != nil },
		build: func(p ShiftFilterParams) *Predicate {
			return &Predicate{Expr: "client_id = ?", Args: []any{*p.ClientID}}
		},
	},
	{
		name:       "service",
		applicable: func(p ShiftFilterParams) bool { return p.ServiceID != nil },
		build: func(p ShiftFilterParams) *Predicate {
			return &Predicate{Expr: "service_id = ?", Args: []any{*p.ServiceID}}
		},
	},
	{
		name:       "zipcode",
		applicable: func(p ShiftFilterParams) bool { return p.Zipcode != nil },
		build: func(p ShiftFilterParams) *Predicate {
			return &Predicate{Expr: "zipcode = ?", Args: []any{*p.Zipcode}}
		},
	},
	{
		// available=false does not match this rule; it falls through,
		// matching the behavior clients already depend on.
		name: "available",
		applicable: func(p ShiftFilterParams) bool {
			return p.Available != nil && *p.Available
		},
		build: func(p ShiftFilterParams) *Predicate {
			return &Predicate{Expr: "available = ?", Args: []any{true}}
		},
	},
	{
		name: "hours",
		applicable: func(p ShiftFilterParams) bool {
			return p.MinHours != nil && p.MaxHours != nil
		},
		build: func(p ShiftFilterParams) *Predicate {
			return &Predicate{
				Expr: "total_hours BETWEEN ? AND ?",
				Args: []any{*p.MinHours, *p.MaxHours},
			}
		},
	},
}

// ResolveShiftFilter returns the predicate for a shift listing, or nil
// when no filter applies. Priority: client_id, service_id, zipcode,
// available (true only), then the inclusive min_hours/max_hours range.
func ResolveShiftFilter(p ShiftFilterParams) *Predicate {
	return resolve(shiftRules, p)
}
