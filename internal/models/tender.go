package models

import "time"

type (
	ContractType string // Тип контракта
	TenderStatus string // Статус тендера
)

const (
	ServicesContract   ContractType = "services"
	SuppliesContract   ContractType = "supplies"
	WorksContract      ContractType = "works"
	ConcessionContract ContractType = "concession"

	OpenTender      TenderStatus = "open"      // Приём заявок открыт
	ClosedTender    TenderStatus = "closed"    // Приём заявок закрыт
	AwardedTender   TenderStatus = "awarded"   // Контракт присуждён
	CancelledTender TenderStatus = "cancelled" // Тендер отменён
)

var (
	knownStatuses = map[TenderStatus]bool{
		OpenTender:      true,
		ClosedTender:    true,
		AwardedTender:   true,
		CancelledTender: true,
	}

	knownContractTypes = map[ContractType]bool{
		ServicesContract:   true,
		SuppliesContract:   true,
		WorksContract:      true,
		ConcessionContract: true,
	}
)

// KnownTenderStatus проверяет, входит ли статус в набор допустимых значений.
func KnownTenderStatus(s TenderStatus) bool {
	return knownStatuses[s]
}

// KnownContractType проверяет, входит ли тип контракта в набор допустимых значений.
func KnownContractType(c ContractType) bool {
	return knownContractTypes[c]
}

// Tender представляет модель тендера с рассчитанным скором.
// Бюджет и дедлайн могут отсутствовать, в этом случае поля равны nil.
type Tender struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Country       string       `json:"country"`
	Sector        string       `json:"sector"`
	CPVCode       string       `json:"cpvCode,omitempty"`
	Budget        *float64     `json:"budget"`
	Currency      string       `json:"currency"`
	Status        TenderStatus `json:"status"`
	ContractType  ContractType `json:"contractType"`
	PublishedDate time.Time    `json:"publishedDate"`
	Deadline      *time.Time   `json:"deadline"`
	Score         float64      `json:"score"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// TenderRequest представляет структуру запроса для создания тендера.
type TenderRequest struct {
	Title         string       `json:"title" validate:"required,max=500"`
	Description   string       `json:"description"`
	Country       string       `json:"country" validate:"required,min=2,max=3"`
	Sector        string       `json:"sector" validate:"required,max=100"`
	CPVCode       string       `json:"cpvCode"`
	Budget        *float64     `json:"budget" validate:"omitempty,gte=0"`
	Currency      string       `json:"currency" validate:"omitempty,len=3"`
	Status        TenderStatus `json:"status"`
	ContractType  ContractType `json:"contractType"`
	PublishedDate *time.Time   `json:"publishedDate"`
	Deadline      *time.Time   `json:"deadline"`
}
