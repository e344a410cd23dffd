package query

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/opentender/radar/internal/models"
)

type (
	SortField string // Поле сортировки
	SortOrder string // Направление сортировки
)

const (
	SortByScore     SortField = "score"
	SortByBudget    SortField = "budget"
	SortByPublished SortField = "publishedDate"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"

	DefaultPageSize = 20
)

// TenderQuery описывает один запрос страницы: фильтры, сортировку и
// пагинацию. Все фильтры необязательны и применяются конъюнктивно.
type TenderQuery struct {
	Country      string
	Sector       string
	Status       models.TenderStatus
	ContractType models.ContractType
	MinScore     *float64
	MaxScore     *float64
	SortBy       SortField
	SortOrder    SortOrder
	Page         int
	PageSize     int
}

// TenderPage - одна страница тендеров и общее число совпадений до пагинации.
type TenderPage struct {
	Items    []models.Tender `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// DefaultQuery возвращает запрос со значениями по умолчанию:
// сортировка по скору по убыванию, первая страница по 20 записей.
func DefaultQuery() TenderQuery {
	return TenderQuery{
		SortBy:    SortByScore,
		SortOrder: OrderDesc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// Validate проверяет параметры запроса. Недопустимые значения не
// исправляются молча: возвращается ошибка с именем поля.
func (q TenderQuery) Validate() error {
	switch q.SortBy {
	case SortByScore, SortByBudget, SortByPublished:
	default:
		return models.NewValidationError("sortBy", fmt.Sprintf("unknown sort field %q", string(q.SortBy)))
	}
	switch q.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return models.NewValidationError("sortOrder", fmt.Sprintf("unknown sort order %q, must be asc or desc", string(q.SortOrder)))
	}
	if q.Page <= 0 {
		return models.NewValidationError("page", "must be a positive integer")
	}
	if q.PageSize <= 0 {
		return models.NewValidationError("pageSize", "must be a positive integer")
	}
	if q.Status != "" && !models.KnownTenderStatus(q.Status) {
		return models.NewValidationError("status", fmt.Sprintf("unknown status %q", string(q.Status)))
	}
	if q.ContractType != "" && !models.KnownContractType(q.ContractType) {
		return models.NewValidationError("contractType", fmt.Sprintf("unknown contract type %q", string(q.ContractType)))
	}
	if q.MinScore != nil && (*q.MinScore < 0 || *q.MinScore > 100) {
		return models.NewValidationError("minScore", "must be within [0, 100]")
	}
	if q.MaxScore != nil && (*q.MaxScore < 0 || *q.MaxScore > 100) {
		return models.NewValidationError("maxScore", "must be within [0, 100]")
	}
	if q.MinScore != nil && q.MaxScore != nil && *q.MinScore > *q.MaxScore {
		return models.NewValidationError("minScore", "must not exceed maxScore")
	}
	return nil
}

// Page фильтрует, сортирует и нарезает коллекцию уже оценённых
// тендеров. Исходный срез не изменяется. Пустой результат фильтрации
// и страница за пределами выборки не считаются ошибками: возвращается
// пустой список с корректным общим числом совпадений.
func Page(tenders []models.Tender, q TenderQuery) (TenderPage, error) {
	if err := q.Validate(); err != nil {
		return TenderPage{}, err
	}

	filtered := make([]models.Tender, 0, len(tenders))
	for _, t := range tenders {
		if q.matches(t) {
			filtered = append(filtered, t)
		}
	}

	sort.Slice(filtered, comparator(filtered, q.SortBy, q.SortOrder))

	total := len(filtered)
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return TenderPage{
		Items:    filtered[start:end],
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// matches проверяет тендер против всех заданных фильтров.
func (q TenderQuery) matches(t models.Tender) bool {
	if q.Country != "" && !strings.EqualFold(t.Country, q.Country) {
		return false
	}
	if q.Sector != "" && !strings.EqualFold(t.Sector, q.Sector) {
		return false
	}
	if q.Status != "" && t.Status != q.Status {
		return false
	}
	if q.ContractType != "" && t.ContractType != q.ContractType {
		return false
	}
	if q.MinScore != nil && t.Score < *q.MinScore {
		return false
	}
	if q.MaxScore != nil && t.Score > *q.MaxScore {
		return false
	}
	return true
}

// comparator строит составную функцию сравнения: первичный ключ по
// выбранному полю в заданном направлении, при равенстве - идентификатор
// тендера по возрастанию. Хранилище не гарантирует порядок, поэтому
// без второго ключа выдача была бы невоспроизводимой между запусками.
func comparator(tenders []models.Tender, field SortField, order SortOrder) func(i, j int) bool {
	cmp := compareBy(field)
	return func(i, j int) bool {
		c := cmp(tenders[i], tenders[j])
		if c == 0 {
			return tenders[i].ID < tenders[j].ID
		}
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	}
}

// compareBy возвращает трёхзначное сравнение по полю сортировки.
func compareBy(field SortField) func(a, b models.Tender) int {
	switch field {
	case SortByBudget:
		return func(a, b models.Tender) int {
			return compareFloat(budgetValue(a), budgetValue(b))
		}
	case SortByPublished:
		return func(a, b models.Tender) int {
			switch {
			case a.PublishedDate.Before(b.PublishedDate):
				return -1
			case a.PublishedDate.After(b.PublishedDate):
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b models.Tender) int {
			return compareFloat(a.Score, b.Score)
		}
	}
}

// budgetValue приводит бюджет к ключу сортировки: отсутствующий бюджет
// считается минус бесконечностью и сортируется ниже любого значения
// при обоих направлениях, но из выдачи не исключается.
func budgetValue(t models.Tender) float64 {
	if t.Budget == nil {
		return math.Inf(-1)
	}
	return *t.Budget
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
