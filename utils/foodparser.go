package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrParseFailure means the input didn't match the quantity-first grammar.
// Always recoverable: the caller re-prompts, it never escalates.
var ErrParseFailure = errors.New(`formato inválido, tente algo como "200g arroz" ou "1 banana"`)

// ParsedFood is the result of parsing one line of free-text food input.
type ParsedFood struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Name   string  `json:"name"`
}

// Accepts: "200g arroz", "1 banana", "1.5 xicara de aveia", "100 ml leite".
// Groups: quantity (comma or period decimals), optional unit token, optional
// "de" connector, remainder as the food name.
var foodInputRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*([a-zA-Zá-úÁ-Ú]+)?\s+(?:de\s+)?(.+)$`)

// ParseFoodInput parses a quantity+unit+name line. A missing unit defaults to
// "unidade" (single item): "2 ovos" means two eggs, not two grams.
func ParseFoodInput(input string) (*ParsedFood, error) {
	m := foodInputRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return nil, ErrParseFailure
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil, ErrParseFailure
	}

	unit := "unidade"
	if m[2] != "" {
		unit = strings.ToLower(m[2])
	}

	name := strings.TrimSpace(m[3])
	if name == "" {
		return nil, ErrParseFailure
	}

	return &ParsedFood{Amount: amount, Unit: unit, Name: name}, nil
}
