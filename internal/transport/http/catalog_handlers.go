package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/usecase"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func (h *Handler) listProducts(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, defaultPageLimit, maxPageLimit)
	filter := domain.CatalogFilter{
		CategorySlug: c.Query("category"),
		Sort:         c.DefaultQuery("sort", domain.SortNewest),
		PriceMin:     httpx.QueryPositiveInt(c, "price_min"),
		PriceMax:     httpx.QueryPositiveInt(c, "price_max"),
		Limit:        limit,
		Offset:       offset,
	}

	ctx, cancel := h.reqContext(c)
	defer cancel()

	products, err := h.catalog.List(ctx, filter)
	if err != nil {
		h.log.Errorf(ctx, "catalog.List failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"pcs":              products,
		"current_category": filter.CategorySlug,
		"sort":             filter.Sort,
		"limit":            limit,
		"offset":           offset,
	})
}

// productDetailResponse — карточка товара и похожие товары.
type productDetailResponse struct {
	*domain.Product
	Related []*domain.Product `json:"related"`
}

func (h *Handler) productDetail(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	product, err := h.catalog.Detail(ctx, c.Param("slug"))
	switch {
	case err == nil:
		// без похожих карточка всё равно отдаётся
		related, rerr := h.catalog.Related(ctx, product)
		if rerr != nil {
			h.log.Warnf(ctx, "catalog.Related failed slug=%s err=%v", product.Slug, rerr)
			related = []*domain.Product{}
		}
		c.JSON(http.StatusOK, productDetailResponse{Product: product, Related: related})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
	default:
		h.log.Errorf(ctx, "catalog.Detail failed slug=%s err=%v", c.Param("slug"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func (h *Handler) featured(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	products, err := h.catalog.Featured(ctx)
	if err != nil {
		h.log.Errorf(ctx, "catalog.Featured failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) search(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	hits, err := h.catalog.Search(ctx, c.Query("q"))
	if err != nil {
		h.log.Errorf(ctx, "catalog.Search failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	c.JSON(http.StatusOK, hits)
}

func (h *Handler) categories(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		h.log.Errorf(ctx, "catalog.Categories failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	c.JSON(http.StatusOK, categories)
}
