package postgres

import (
	"context"
	"strings"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const regionInsertBatchSize = 500

type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

func (repo *regionRepository) SearchByFullName(ctx context.Context, keyword string) ([]*entity.Region, error) {
	var regionMs []model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("full_name LIKE ?", "%"+escapeLike(keyword)+"%").
		Order("id").
		Find(&regionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search regions")
	}

	regions := make([]*entity.Region, 0, len(regionMs))
	for i := range regionMs {
		regions = append(regions, toRegionDomain(&regionMs[i]))
	}

	return regions, nil
}

// ReplaceAll must run inside a transaction for the swap to be atomic.
func (repo *regionRepository) ReplaceAll(ctx context.Context, regions []*entity.Region) error {
	db := repo.db.WithContext(ctx)

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.RegionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear regions")
	}
	if len(regions) == 0 {
		return nil
	}

	regionMs := make([]*model.RegionModel, 0, len(regions))
	for _, region := range regions {
		regionMs = append(regionMs, &model.RegionModel{
			Sido:     region.Sido,
			Sigg:     region.Sigg,
			Emd:      region.Emd,
			FullName: region.FullName,
		})
	}

	if err := db.CreateInBatches(regionMs, regionInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert regions")
	}

	for i, regionM := range regionMs {
		regions[i].ID = regionM.ID
	}

	return nil
}

func toRegionDomain(regionM *model.RegionModel) *entity.Region {
	return &entity.Region{
		ID:       regionM.ID,
		Sido:     regionM.Sido,
		Sigg:     regionM.Sigg,
		Emd:      regionM.Emd,
		FullName: regionM.FullName,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
