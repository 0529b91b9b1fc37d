// Package query translates list-endpoint parameters into MongoDB filter,
// sort, and pagination values. Building the filter is a pure function of the
// parsed parameters and the supplied clock reading.
package query

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialive/event-catalog/internal/model"
)

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests are clamped down.
	MaxLimit = 100

	dateLayout = "2006-01-02"
)

// ListParams holds the parsed filter, sort, and pagination inputs for the
// event listing endpoint. Zero values mean "not supplied".
type ListParams struct {
	Search        string
	City          string
	Category      string
	DateFrom      *time.Time
	DateTo        *time.Time
	MinPrice      *float64
	MaxPrice      *float64
	AvailableOnly bool
	// Upcoming defaults to true; only the literal string "false" disables it.
	Upcoming  bool
	SortBy    string
	SortDesc  bool
	Page      int
	Limit     int
}

// ParseListParams reads list parameters from a URL query. Values that fail to
// parse as numbers or dates are treated as absent rather than rejected; page
// and limit are clamped to sane bounds.
func ParseListParams(q url.Values) ListParams {
	p := ListParams{
		Search:        q.Get("search"),
		City:          q.Get("city"),
		Category:      q.Get("category"),
		DateFrom:      parseDate(q.Get("dateFrom")),
		DateTo:        parseDate(q.Get("dateTo")),
		MinPrice:      parseFloat(q.Get("minPrice")),
		MaxPrice:      parseFloat(q.Get("maxPrice")),
		AvailableOnly: q.Get("availableOnly") == "true",
		Upcoming:      q.Get("upcoming") != "false",
		SortBy:        q.Get("sortBy"),
		SortDesc:      q.Get("sortOrder") == "desc",
		Page:          1,
		Limit:         DefaultLimit,
	}

	if page := parseInt(q.Get("page")); page != nil && *page > 0 {
		p.Page = *page
	}
	if limit := parseInt(q.Get("limit")); limit != nil && *limit > 0 {
		p.Limit = *limit
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	return p
}

// Filter builds the conjunctive MongoDB filter document. The now argument
// anchors the implicit upcoming lower bound, keeping the function
// deterministic.
//
// All date bounds share one schedule $elemMatch: a single entry must satisfy
// the upcoming/from/to conditions together. Price bounds and the availability
// check likewise share one ticketTypes $elemMatch, so one tier must satisfy
// the full price range and, when requested, still have tickets.
func (p ListParams) Filter(now time.Time) bson.M {
	filter := bson.M{}

	if p.Search != "" {
		filter["$text"] = bson.M{"$search": p.Search}
	}

	sched := bson.M{}
	if p.City != "" {
		// The city value is quoted so it matches as a literal substring,
		// never as a user-supplied pattern.
		sched["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.City), Options: "i"}
	}
	date := bson.M{}
	if p.Upcoming {
		date["$gte"] = now
	}
	if p.DateFrom != nil {
		// An explicit lower bound replaces the implicit upcoming bound.
		date["$gte"] = *p.DateFrom
	}
	if p.DateTo != nil {
		date["$lte"] = *p.DateTo
	}
	if len(date) > 0 {
		sched["date"] = date
	}
	if len(sched) > 0 {
		filter["schedule"] = bson.M{"$elemMatch": sched}
	}

	if p.Category != "" && model.ValidCategory(p.Category) {
		filter["category"] = p.Category
	}

	tickets := bson.M{}
	price := bson.M{}
	if p.MinPrice != nil {
		price["$gte"] = *p.MinPrice
	}
	if p.MaxPrice != nil {
		price["$lte"] = *p.MaxPrice
	}
	if len(price) > 0 {
		tickets["price"] = price
	}
	if p.AvailableOnly {
		tickets["availableTickets"] = bson.M{"$gt": 0}
	}
	if len(tickets) > 0 {
		filter["ticketTypes"] = bson.M{"$elemMatch": tickets}
	}

	return filter
}

// Sort returns the sort document, or nil for storage order.
func (p ListParams) Sort() bson.D {
	if p.SortBy == "" {
		return nil
	}
	order := 1
	if p.SortDesc {
		order = -1
	}
	return bson.D{{Key: p.SortBy, Value: order}}
}

// Skip returns the number of documents to skip for the requested page.
func (p ListParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages computes the page count for a result total.
func (p ListParams) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t
	}
	return nil
}
