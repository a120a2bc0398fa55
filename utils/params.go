package utils

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo/options"
)

type QueryOptions struct {
	Page   int
	Limit  int
	Search string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	return QueryOptions{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	}
}

// FindOptions turns the page/limit pair into Mongo skip/limit options.
func (q QueryOptions) FindOptions() *options.FindOptions {
	return options.Find().
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))
}
