package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/errors"
	"studylink/internal/usecase"
	"studylink/internal/util"

	"go.uber.org/fx"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const (
	columnSido = "시도명"
	columnSigg = "시군구명"
	columnEmd  = "읍면동명"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type regionService struct {
	txManager  repository.TransactionManager
	regionRepo repository.RegionRepository
	logger     *slog.Logger
}

// RegionServiceParams holds dependencies for RegionService, injected by Fx.
type RegionServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RegionRepo repository.RegionRepository
	Logger     *slog.Logger
}

// NewRegionService is the constructor for regionService.
func NewRegionService(params RegionServiceParams) usecase.RegionUsecase {
	return &regionService{
		txManager:  params.TxManager,
		regionRepo: params.RegionRepo,
		logger:     params.Logger,
	}
}

func (srv *regionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search matches keyword anywhere in the full region name. A blank keyword matches nothing.
func (srv *regionService) Search(ctx context.Context, keyword string) ([]*entity.Region, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*entity.Region{}, nil
	}

	regions, err := srv.regionRepo.SearchByFullName(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search regions")
	}

	return regions, nil
}

// Import parses the whole file before touching storage, then swaps the table in one transaction.
func (srv *regionService) Import(ctx context.Context, src io.Reader) (int, error) {
	started := time.Now()
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, errors.Join(domainerrors.ErrRegionFileNotReadable, err)
	}

	regions, err := parseRegionCSV(data)
	if err != nil {
		return 0, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RegionRepo().ReplaceAll(ctx, regions)
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to replace regions")
	}

	srv.log(ctx).Info("Regions imported",
		slog.Int("count", len(regions)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("checksum", util.Checksum(data)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return len(regions), nil
}

// parseRegionCSV reads a district table exported as UTF-8 or EUC-KR. Columns are found by
// header name and rows without 읍면동 are skipped.
func parseRegionCSV(data []byte) ([]*entity.Region, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if err != nil {
			return nil, errors.Join(domainerrors.ErrRegionFileNotReadable, err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Join(domainerrors.ErrRegionFileNotReadable, errors.Wrap(err, "failed to read header"))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	indexes := make([]int, 0, 3)
	for _, name := range []string{columnSido, columnSigg, columnEmd} {
		idx, ok := columns[name]
		if !ok {
			return nil, domainerrors.ErrRegionFileNotReadable.WrapMessage("missing column " + name)
		}
		indexes = append(indexes, idx)
	}

	var regions []*entity.Region
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(domainerrors.ErrRegionFileNotReadable, err)
		}

		field := func(i int) string {
			if indexes[i] >= len(record) {
				return ""
			}

			return strings.TrimSpace(record[indexes[i]])
		}

		emd := field(2)
		if emd == "" {
			continue
		}
		regions = append(regions, entity.NewRegion(field(0), field(1), emd))
	}

	return regions, nil
}
