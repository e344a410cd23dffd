package scoring

import (
	"math"
	"strings"

	"github.com/opentender/radar/internal/models"
)

// Пороги бюджета в валюте тендера. Конвертация валют не выполняется:
// пороги применяются к сырому числу как есть.
var budgetThresholds = [...]float64{10000, 50000, 100000, 500000}

// ScoreBreakdown - разложение скора тендера по шести факторам.
// Total ограничен интервалом [0, 100], сумма факторов до ограничения
// может выходить за его пределы.
type ScoreBreakdown struct {
	Budget       float64 `json:"budget"`
	Country      float64 `json:"country"`
	Sector       float64 `json:"sector"`
	Keywords     float64 `json:"keywords"`
	ContractType float64 `json:"contractType"`
	Status       float64 `json:"status"`
	Total        float64 `json:"total"`
}

// Engine - детерминированный движок скоринга тендеров. Чистая функция
// от тендера и профиля: одинаковые входы дают побитово одинаковый
// результат независимо от порядка и конкурентности вызовов.
type Engine struct {
	weights           Weights
	priorityCountries map[string]struct{}
	targetSectors     map[string]struct{}
	keywords          []string
}

// NewEngine создаёт движок для заданного профиля. Страны и секторы
// нормализуются по регистру один раз при создании.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		weights:           cfg.Weights,
		priorityCountries: make(map[string]struct{}, len(cfg.PriorityCountries)),
		targetSectors:     make(map[string]struct{}, len(cfg.TargetSectors)),
		keywords:          make([]string, 0, len(cfg.RelevantKeywords)),
	}
	if len(e.weights.BudgetTiers) != len(budgetThresholds) {
		e.weights.BudgetTiers = DefaultWeights().BudgetTiers
	}
	if len(e.weights.KeywordTiers) != 4 {
		e.weights.KeywordTiers = DefaultWeights().KeywordTiers
	}
	for _, c := range cfg.PriorityCountries {
		e.priorityCountries[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	for _, s := range cfg.TargetSectors {
		e.targetSectors[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	for _, k := range cfg.RelevantKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			e.keywords = append(e.keywords, k)
		}
	}
	return e
}

// Score рассчитывает скор тендера. Функция тотальна: незнакомые
// значения перечислений дают нейтральный вклад, отсутствующие
// бюджет и дедлайн не считаются ошибкой.
func (e *Engine) Score(t models.Tender) ScoreBreakdown {
	b := ScoreBreakdown{
		Budget:       e.scoreBudget(t.Budget),
		Country:      e.scoreCountry(t.Country),
		Sector:       e.scoreSector(t.Sector),
		Keywords:     e.scoreKeywords(t.Title, t.Description),
		ContractType: e.scoreContractType(t.ContractType),
		Status:       e.scoreStatus(t.Status),
	}
	b.Total = clamp(b.Budget+b.Country+b.Sector+b.Keywords+b.ContractType+b.Status, 0, 100)
	return b
}

// scoreBudget начисляет баллы за бюджет по ступеням:
// <10k - 0, 10k-50k, 50k-100k, 100k-500k, >=500k.
func (e *Engine) scoreBudget(budget *float64) float64 {
	if budget == nil || *budget < budgetThresholds[0] {
		return 0
	}
	tier := 0
	for i, threshold := range budgetThresholds {
		if *budget >= threshold {
			tier = i
		}
	}
	return e.weights.BudgetTiers[tier]
}

// scoreCountry начисляет баллы за страну. Страна вне приоритетного
// списка (в том числе пустая) получает базовый балл, а не ноль.
func (e *Engine) scoreCountry(country string) float64 {
	if _, ok := e.priorityCountries[strings.ToUpper(country)]; ok {
		return e.weights.CountryMatch
	}
	return e.weights.CountryOther
}

// scoreSector начисляет баллы за сектор.
func (e *Engine) scoreSector(sector string) float64 {
	if _, ok := e.targetSectors[strings.ToLower(sector)]; ok {
		return e.weights.SectorMatch
	}
	return e.weights.SectorOther
}

// scoreKeywords считает вхождения ключевых слов профиля в заголовке и
// описании без учёта регистра, перекрывающиеся вхождения учитываются.
// Ступени: 0 - нет совпадений, 1-2, 3-4, 5 и более.
func (e *Engine) scoreKeywords(title, description string) float64 {
	text := strings.ToLower(title + " " + description)
	matches := 0
	for _, kw := range e.keywords {
		matches += countOccurrences(text, kw)
	}
	tiers := e.weights.KeywordTiers
	switch {
	case matches == 0:
		return tiers[0]
	case matches <= 2:
		return tiers[1]
	case matches <= 4:
		return tiers[2]
	default:
		return tiers[3]
	}
}

// scoreContractType начисляет баллы за тип контракта: услуги и поставки
// предпочтительны, работы и концессии штрафуются, незнакомый тип даёт
// нейтральный ноль, чтобы движок оставался тотальным на исторических данных.
func (e *Engine) scoreContractType(ct models.ContractType) float64 {
	switch ct {
	case models.ServicesContract, models.SuppliesContract:
		return e.weights.TypePreferred
	case models.WorksContract, models.ConcessionContract:
		return e.weights.TypePenalty
	default:
		return 0
	}
}

// scoreStatus начисляет баллы за статус: открытые тендеры ценнее.
func (e *Engine) scoreStatus(status models.TenderStatus) float64 {
	if status == models.OpenTender {
		return e.weights.StatusOpen
	}
	return 0
}

// countOccurrences считает вхождения подстроки, включая перекрывающиеся.
func countOccurrences(text, sub string) int {
	if sub == "" {
		return 0
	}
	count, from := 0, 0
	for {
		i := strings.Index(text[from:], sub)
		if i < 0 {
			return count
		}
		count++
		from += i + 1
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
