package utils

import (
	"net/url"
	"strconv"

	"github.com/opentender/radar/internal/models"
	"github.com/opentender/radar/internal/query"
)

// ParseTenderQuery разбирает параметры листинга из строки запроса.
// Отсутствующие параметры получают значения по умолчанию. Здесь
// проверяется только числовой синтаксис, допустимость значений
// проверяет сам движок запросов.
func ParseTenderQuery(values url.Values) (query.TenderQuery, error) {
	q := query.DefaultQuery()

	q.Country = values.Get("country")
	q.Sector = values.Get("sector")
	q.Status = models.TenderStatus(values.Get("status"))
	q.ContractType = models.ContractType(values.Get("contractType"))

	if raw := values.Get("sortBy"); raw != "" {
		q.SortBy = query.SortField(raw)
	}
	if raw := values.Get("sortOrder"); raw != "" {
		q.SortOrder = query.SortOrder(raw)
	}

	var err error
	if q.Page, err = parseIntParam(values, "page", q.Page); err != nil {
		return query.TenderQuery{}, err
	}
	if q.PageSize, err = parseIntParam(values, "pageSize", q.PageSize); err != nil {
		return query.TenderQuery{}, err
	}
	if q.MinScore, err = parseFloatParam(values, "minScore"); err != nil {
		return query.TenderQuery{}, err
	}
	if q.MaxScore, err = parseFloatParam(values, "maxScore"); err != nil {
		return query.TenderQuery{}, err
	}
	return q, nil
}

func parseIntParam(values url.Values, name string, def int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func parseFloatParam(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, models.NewValidationError(name, "must be a number")
	}
	return &v, nil
}
