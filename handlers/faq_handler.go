package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"advisory_faq/config"
	_ "advisory_faq/docs" // 导入 swagger 文档
	"advisory_faq/models"
	"advisory_faq/services"
	"advisory_faq/utils"
)

const maxRankBodyBytes = 1 << 20

// ListFAQsHandler godoc
// @Summary 列出FAQ
// @Description 按目录顺序列出FAQ，可按分类过滤
// @Tags FAQ
// @Produce json
// @Param category query string false "分类ID"
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/faqs [get]
func ListFAQsHandler(w http.ResponseWriter, r *http.Request, svc *services.FAQService) {
	category := r.URL.Query().Get("category")
	utils.WriteSuccessResponse(w, svc.ListFAQs(category))
}

// ListPostsHandler godoc
// @Summary 列出文章
// @Description 列出目录中的所有文章（不含正文）
// @Tags 文章
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/posts [get]
func ListPostsHandler(w http.ResponseWriter, r *http.Request, svc *services.FAQService) {
	utils.WriteSuccessResponse(w, svc.ListPosts())
}

// GetPostFAQsHandler godoc
// @Summary 获取文章相关FAQ
// @Description 按相关性返回与文章最匹配的FAQ，分数相同时保持目录顺序
// @Tags FAQ
// @Produce json
// @Param slug path string true "文章slug"
// @Param limit query int false "返回数量"
// @Param debug query bool false "是否返回分数"
// @Success 200 {object} models.APIResponse{data=models.RelatedFAQsResponse} "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 404 {object} models.APIResponse "文章不存在"
// @Router /api/posts/{slug}/faqs [get]
func GetPostFAQsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, svc *services.FAQService) {
	slug := chi.URLParam(r, "slug")
	if !utils.ValidateSlug(w, slug) {
		return
	}
	limit, ok := utils.ParseLimit(w, r.URL.Query().Get("limit"), cfg.Ranking.DefaultMaxResults, cfg.Ranking.MaxResultsLimit)
	if !ok {
		return
	}

	var faqs interface{}
	if debug, _ := strconv.ParseBool(r.URL.Query().Get("debug")); debug {
		scored, err := svc.ScoredFAQsForPost(slug, limit)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		faqs = scored
	} else {
		entries, err := svc.RelatedFAQsForPost(slug, limit)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		faqs = entries
	}

	utils.WriteSuccessResponse(w, models.RelatedFAQsResponse{
		Slug:  slug,
		Limit: limit,
		FAQs:  faqs,
	})
}

// GetPostFAQSchemaHandler godoc
// @Summary 获取文章FAQ结构化数据
// @Description 返回 schema.org FAQPage JSON-LD，问题顺序与相关性排序一致
// @Tags FAQ
// @Produce json
// @Param slug path string true "文章slug"
// @Param limit query int false "返回数量"
// @Success 200 {object} models.FAQPageSchema "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 404 {object} models.APIResponse "文章不存在"
// @Router /api/posts/{slug}/faqs/schema [get]
func GetPostFAQSchemaHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, svc *services.FAQService) {
	slug := chi.URLParam(r, "slug")
	if !utils.ValidateSlug(w, slug) {
		return
	}
	limit, ok := utils.ParseLimit(w, r.URL.Query().Get("limit"), cfg.Ranking.DefaultMaxResults, cfg.Ranking.MaxResultsLimit)
	if !ok {
		return
	}

	schema, err := svc.FAQPageSchemaForPost(slug, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	utils.WriteJSONLD(w, schema)
}

// RankFAQsHandler godoc
// @Summary 为任意内容排序FAQ
// @Description 根据分类、标签和文本为提交的内容返回最相关的FAQ
// @Tags FAQ
// @Accept json
// @Produce json
// @Param request body models.RankRequest true "内容"
// @Success 200 {object} models.APIResponse{data=models.RelatedFAQsResponse} "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/faqs/rank [post]
func RankFAQsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, svc *services.FAQService) {
	var req models.RankRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRankBodyBytes)).Decode(&req); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, "invalid request body: "+err.Error(), map[string]interface{}{})
		return
	}

	limit := cfg.Ranking.DefaultMaxResults
	if req.Limit != nil {
		limit = *req.Limit
	}
	limit = utils.Min(limit, cfg.Ranking.MaxResultsLimit)

	faqs, err := svc.RankForContent(req.ContentItem(), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.WriteSuccessResponse(w, models.RelatedFAQsResponse{
		Limit: limit,
		FAQs:  faqs,
	})
}

// CatalogHandler godoc
// @Summary 目录信息
// @Description 返回已加载目录的条目数、分类和版本
// @Tags 系统
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStats} "成功"
// @Router /api/catalog [get]
func CatalogHandler(w http.ResponseWriter, r *http.Request, svc *services.FAQService) {
	utils.WriteSuccessResponse(w, svc.CatalogStats())
}

// HealthHandler 存活检查
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, map[string]interface{}{"status": "ok"})
}

// RegisterRoutes 注册所有路由，gatherer 为 nil 时不暴露 /metrics
func RegisterRoutes(r *chi.Mux, cfg *config.Config, svc *services.FAQService, gatherer prometheus.Gatherer) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	if gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", HealthHandler)

	r.Get("/api/catalog", func(w http.ResponseWriter, r *http.Request) {
		CatalogHandler(w, r, svc)
	})

	r.Get("/api/faqs", func(w http.ResponseWriter, r *http.Request) {
		ListFAQsHandler(w, r, svc)
	})

	r.Post("/api/faqs/rank", func(w http.ResponseWriter, r *http.Request) {
		RankFAQsHandler(w, r, cfg, svc)
	})

	r.Get("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		ListPostsHandler(w, r, svc)
	})

	r.Get("/api/posts/{slug}/faqs", func(w http.ResponseWriter, r *http.Request) {
		GetPostFAQsHandler(w, r, cfg, svc)
	})

	r.Get("/api/posts/{slug}/faqs/schema", func(w http.ResponseWriter, r *http.Request) {
		GetPostFAQSchemaHandler(w, r, cfg, svc)
	})
}
