package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/opentender/radar/internal/models"
	"github.com/opentender/radar/internal/query"
	"github.com/opentender/radar/internal/repository"
	"github.com/opentender/radar/internal/scoring"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TenderService struct {
	Repo   repository.TenderRepository
	Engine *scoring.Engine
}

// NewTenderService создаёт новый экземпляр TenderService.
func NewTenderService(repo repository.TenderRepository, engine *scoring.Engine) *TenderService {
	return &TenderService{Repo: repo, Engine: engine}
}

// ListTenders возвращает страницу тендеров: хранилище отдаёт все записи
// с сохранёнными скорами, фильтрацию, сортировку и пагинацию выполняет
// движок запросов. Ошибки валидации параметров пробрасываются вызывающему.
func (s *TenderService) ListTenders(ctx context.Context, q query.TenderQuery) (query.TenderPage, error) {
	tenders, err := s.Repo.GetAllTenders(ctx)
	if err != nil {
		return query.TenderPage{}, models.NewErrorResponse(http.StatusInternalServerError, "failed to fetch tenders")
	}
	return query.Page(tenders, q)
}

// GetTender возвращает тендер по идентификатору.
func (s *TenderService) GetTender(ctx context.Context, tenderID string) (*models.Tender, error) {
	tender, err := s.Repo.GetTenderByID(ctx, tenderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "tender not found")
		}
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to fetch tender")
	}
	return tender, nil
}

// ExplainScore пересчитывает разложение скора тендера по текущему
// профилю. Сохранённый при записи скор не изменяется.
func (s *TenderService) ExplainScore(ctx context.Context, tenderID string) (*scoring.ScoreBreakdown, error) {
	tender, err := s.GetTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	breakdown := s.Engine.Score(*tender)
	return &breakdown, nil
}

// CreateTender создает новый тендер, рассчитывает и сохраняет его скор.
func (s *TenderService) CreateTender(ctx context.Context, tenderReq models.TenderRequest) (*models.Tender, error) {
	if tenderReq.Status == "" {
		tenderReq.Status = models.OpenTender
	}
	if !models.KnownTenderStatus(tenderReq.Status) {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "unsupported status: "+string(tenderReq.Status))
	}
	if tenderReq.ContractType != "" && !models.KnownContractType(tenderReq.ContractType) {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "unsupported contract type: "+string(tenderReq.ContractType))
	}
	if tenderReq.Currency == "" {
		tenderReq.Currency = "EUR"
	}

	now := time.Now().UTC()
	published := now
	if tenderReq.PublishedDate != nil {
		published = *tenderReq.PublishedDate
	}

	newTender := models.Tender{
		ID:            uuid.New().String(),
		Title:         tenderReq.Title,
		Description:   tenderReq.Description,
		Country:       tenderReq.Country,
		Sector:        tenderReq.Sector,
		CPVCode:       tenderReq.CPVCode,
		Budget:        tenderReq.Budget,
		Currency:      tenderReq.Currency,
		Status:        tenderReq.Status,
		ContractType:  tenderReq.ContractType,
		PublishedDate: published,
		Deadline:      tenderReq.Deadline,
		CreatedAt:     now,
	}
	newTender.Score = s.Engine.Score(newTender).Total

	if err := s.Repo.CreateTender(ctx, newTender); err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to insert tender")
	}
	return &newTender, nil
}

// GetCountries возвращает список стран, представленных в хранилище.
func (s *TenderService) GetCountries(ctx context.Context) ([]string, error) {
	countries, err := s.Repo.GetCountries(ctx)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to fetch countries")
	}
	return countries, nil
}

// GetSectors возвращает список секторов, представленных в хранилище.
func (s *TenderService) GetSectors(ctx context.Context) ([]string, error) {
	sectors, err := s.Repo.GetSectors(ctx)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to fetch sectors")
	}
	return sectors, nil
}
