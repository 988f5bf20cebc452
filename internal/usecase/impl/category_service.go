package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) GetAll(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Register creates a category with a name no other category uses.
func (srv *categoryService) Register(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if err := srv.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	category := &entity.Category{LogoEmoji: input.LogoEmoji, Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category registered", slog.Int64("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

// Update renames a category or changes its emoji. Keeping the current name is allowed.
func (srv *categoryService) Update(ctx context.Context, id int64, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := srv.ensureNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.LogoEmoji = input.LogoEmoji
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, srv.translateNotFound(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return srv.translateNotFound(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}

func (srv *categoryService) find(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.translateNotFound(err, "failed to find category")
	}

	return category, nil
}

// ensureNameFree fails when another category than ownID already uses name.
func (srv *categoryService) ensureNameFree(ctx context.Context, name string, ownID int64) error {
	existing, err := srv.categoryRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up category name")
	}
	if existing.ID != ownID {
		return domainerrors.ErrCategoryNameDuplicate
	}

	return nil
}

func (srv *categoryService) translateNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, message)
}
