package handler

import (
	"log/slog"
	"net/http"

	"studylink/internal/delivery/api/response"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const regionFileField = "regionFile"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	RegionUC   usecase.RegionUsecase
	Logger     *slog.Logger
}

// CatalogHandler serves categories and regions, including their admin routes.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	regionUC   usecase.RegionUsecase
	logger     *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		regionUC:   params.RegionUC,
		logger:     params.Logger,
	}
}

// CategoryRequest represents the editable fields of a category.
type CategoryRequest struct {
	LogoEmoji string `json:"logoEmoji" validate:"required"`
	Name      string `json:"name" validate:"required,min=2,max=20"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	LogoEmoji string `json:"logoEmoji"`
	Name      string `json:"name"`
}

// RegionResponse is the public view of a region.
type RegionResponse struct {
	ID       int64  `json:"id"`
	Emd      string `json:"emd"`
	FullName string `json:"fullName"`
}

func newCategoryResponse(category *entity.Category) *CategoryResponse {
	return &CategoryResponse{ID: category.ID, LogoEmoji: category.LogoEmoji, Name: category.Name}
}

// GetCategories handles GET /api/v1/categories.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryUC.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	res := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, newCategoryResponse(category))
	}

	return response.Success(c, http.StatusOK, res)
}

// RegisterCategory handles POST /admin/api/v1/categories.
func (h *CatalogHandler) RegisterCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Register(c.Request().Context(), usecase.CategoryInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Category registered", slog.Int64("categoryID", category.ID), slog.String("by", subjectOf(c)))

	return response.Success(c, http.StatusCreated, newCategoryResponse(category))
}

// UpdateCategory handles PATCH /admin/api/v1/categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, usecase.CategoryInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// DeleteCategory handles DELETE /admin/api/v1/categories/:id.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Category deleted", slog.Int64("categoryID", id), slog.String("by", subjectOf(c)))

	return c.NoContent(http.StatusNoContent)
}

// SearchRegions handles GET /api/v1/regions?keyword=.
func (h *CatalogHandler) SearchRegions(c echo.Context) error {
	regions, err := h.regionUC.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return errors.WithStack(err)
	}

	res := make([]*RegionResponse, 0, len(regions))
	for _, region := range regions {
		res = append(res, &RegionResponse{ID: region.ID, Emd: region.Emd, FullName: region.FullName})
	}

	return response.Success(c, http.StatusOK, res)
}

// ImportRegions handles POST /admin/api/v1/regions with a multipart district CSV.
func (h *CatalogHandler) ImportRegions(c echo.Context) error {
	header, err := c.FormFile(regionFileField)
	if err != nil {
		return errors.Join(domainerrors.ErrRegionFileNotReadable, err)
	}

	file, err := header.Open()
	if err != nil {
		return errors.Join(domainerrors.ErrRegionFileNotReadable, err)
	}
	defer file.Close()

	count, err := h.regionUC.Import(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Region file imported", slog.String("file", header.Filename), slog.Int("count", count), slog.String("by", subjectOf(c)))

	return response.Success(c, http.StatusCreated, map[string]int{"imported": count})
}
