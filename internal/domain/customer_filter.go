package domain

// CustomerFilter defines parameters for searching and paginating customers.
type CustomerFilter struct {
	// Search performs a case-insensitive substring match on name and email.
	// nil or empty string means no text filter.
	Search *string

	// IsActive filters by activity flag. nil means both.
	IsActive *bool

	// MinSpend filters customers whose total_spend is >= the given value.
	MinSpend *float64

	// SortBy determines the sort column: "name", "total_spend", "created_at",
	// "last_order_date". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of customers to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of customers to skip.
	Offset int
}

const (
	customerFilterDefaultLimit = 50
	customerFilterMaxLimit     = 200

	CustomerSortByName          = "name"
	CustomerSortByTotalSpend    = "total_spend"
	CustomerSortByCreatedAt     = "created_at"
	CustomerSortByLastOrderDate = "last_order_date"
)

// Normalize applies defaults, rejects unknown sort columns, and clamps
// pagination values.
func (f *CustomerFilter) Normalize() {
	switch f.SortBy {
	case CustomerSortByName, CustomerSortByTotalSpend, CustomerSortByCreatedAt, CustomerSortByLastOrderDate:
		// valid
	default:
		f.SortBy = CustomerSortByCreatedAt
	}

	switch f.SortOrder {
	case "ASC", "DESC":
		// valid
	default:
		f.SortOrder = "DESC"
	}

	if f.Limit <= 0 {
		f.Limit = customerFilterDefaultLimit
	}
	if f.Limit > customerFilterMaxLimit {
		f.Limit = customerFilterMaxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
