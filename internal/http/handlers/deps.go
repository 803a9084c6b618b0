package handlers

import (
	"github.com/jmoiron/sqlx"

	"aura/internal/config"
	"aura/internal/gemini"
	"aura/internal/repos"
	"aura/internal/services"
	"aura/internal/sheets"
)

type Deps struct {
	AuthHandler      *AuthHandler
	CatalogHandler   *CatalogHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	RequestHandler   *RequestHandler
	CommunityHandler *CommunityHandler
	AdminHandler     *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, sh *sheets.Client, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	draftRepo := repos.NewRequestRepo(db)
	commRepo := repos.NewCommunityRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, sh)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, orderRepo, prodRepo, sh)
	requestSvc := services.NewRequestService(draftRepo, sh)
	communitySvc := services.NewCommunityService(commRepo, sh)
	reportSvc := services.NewReportService(orderRepo, sh)
	enhancer := gemini.NewEnhancer(cfg.GeminiAPIKey, cfg.GeminiModel)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc, Auth: auth},
		RequestHandler:   &RequestHandler{Requests: requestSvc, Auth: auth},
		CommunityHandler: &CommunityHandler{Community: communitySvc, Auth: auth},
		AdminHandler: &AdminHandler{
			Catalog: catalogSvc, Order: orderSvc, Report: reportSvc,
			Sheets: sh, Enhancer: enhancer,
		},
	}
}
