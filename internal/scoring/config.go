package scoring

// Weights задаёт баллы каждого фактора скоринга. Значения приходят из
// YAML-профиля и после создания движка не меняются.
type Weights struct {
	BudgetTiers   []float64 `mapstructure:"budget_tiers"`  // баллы за пороги 10k/50k/100k/500k
	CountryMatch  float64   `mapstructure:"country_match"`
	CountryOther  float64   `mapstructure:"country_other"`
	SectorMatch   float64   `mapstructure:"sector_match"`
	SectorOther   float64   `mapstructure:"sector_other"`
	KeywordTiers  []float64 `mapstructure:"keyword_tiers"` // баллы за 0, 1-2, 3-4, 5+ совпадений
	TypePreferred float64   `mapstructure:"type_preferred"`
	TypePenalty   float64   `mapstructure:"type_penalty"`
	StatusOpen    float64   `mapstructure:"status_open"`
}

// Config - профиль бизнеса для скоринга: приоритетные страны, целевые
// секторы, релевантные ключевые слова и таблица весов. Профиль
// неизменяем и может разделяться всеми конкурентными вызовами. Замена
// профиля влияет только на будущие расчёты, сохранённые скоры не
// пересчитываются.
type Config struct {
	PriorityCountries []string `mapstructure:"priority_countries"`
	TargetSectors     []string `mapstructure:"target_sectors"`
	RelevantKeywords  []string `mapstructure:"relevant_keywords"`
	Weights           Weights  `mapstructure:"weights"`
}

// DefaultWeights возвращает таблицу весов по умолчанию.
func DefaultWeights() Weights {
	return Weights{
		BudgetTiers:   []float64{5, 15, 25, 30},
		CountryMatch:  20,
		CountryOther:  5,
		SectorMatch:   20,
		SectorOther:   5,
		KeywordTiers:  []float64{0, 5, 10, 15},
		TypePreferred: 10,
		TypePenalty:   -5,
		StatusOpen:    5,
	}
}

// DefaultConfig возвращает профиль по умолчанию.
func DefaultConfig() Config {
	return Config{
		PriorityCountries: []string{"ES", "PT", "FR", "IT", "DE", "UK"},
		TargetSectors: []string{
			"technology",
			"software",
			"consulting",
			"digital",
			"it",
			"telecommunications",
		},
		RelevantKeywords: []string{
			"digital",
			"software",
			"cloud",
			"api",
			"saas",
			"platform",
			"data",
			"analytics",
			"ai",
			"machine learning",
			"blockchain",
			"cybersecurity",
		},
		Weights: DefaultWeights(),
	}
}
