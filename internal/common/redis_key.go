package common

import (
	"fmt"
	"strconv"
	"strings"
)

func RedisKeySearchInfluencers(query string, maxBudget *float64) string {
	budget := "any"
	if maxBudget != nil {
		budget = strconv.FormatFloat(*maxBudget, 'f', -1, 64)
	}

	return fmt.Sprintf("search:influencers:%s:%s", budget, strings.ToLower(query))
}
