package service

import (
	"fmt"
	"strings"

	"crypto-sentiment-bot/internal/domain"
)

// ParseAnalysisArgs joins bare words into the coin query and reads key=value options.
func ParseAnalysisArgs(args []string) (AnalysisRequest, error) {
	var req AnalysisRequest
	var words []string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			words = append(words, arg)
			continue
		}
		var err error
		switch strings.ToLower(key) {
		case "side":
			req.Side, err = domain.ParseSide(value)
		case "amount":
			req.Amount, err = domain.ParseNumber(key, value)
		case "lev", "leverage":
			req.Leverage, err = domain.ParseNumber(key, value)
		case "target":
			req.Target, err = domain.ParseNumber(key, value)
		case "lang":
			req.Lang = strings.ToLower(value)
		default:
			err = fmt.Errorf("%w: unknown option %q", domain.ErrInvalidInput, key)
		}
		if err != nil {
			return req, err
		}
	}
	req.Query = strings.Join(words, " ")
	if req.Query == "" {
		return req, domain.ErrEmptyQuery
	}
	return req, nil
}
