package service

import (
	"context"

	"fritter-backend/internal/errors"
	"fritter-backend/internal/model"
	"fritter-backend/internal/repository/interfaces"
	"fritter-backend/internal/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SourceServiceInterface 定义引用来源服务的接口，便于在测试中模拟
type SourceServiceInterface interface {
	CreateRecord(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error)
	DeleteRecord(ctx context.Context, freetID primitive.ObjectID) error
	FreetByID(ctx context.Context, freetID string) (*model.Freet, error)
	Sources(ctx context.Context, freetID primitive.ObjectID) ([]string, error)
	AddSource(ctx context.Context, freetID primitive.ObjectID, source string) error
	SourceExists(ctx context.Context, freetID primitive.ObjectID, source string) error
	RemoveSource(ctx context.Context, freetID primitive.ObjectID, source string) error
}

type SourceService struct {
	sourceRepo interfaces.SourceRepository
	freetRepo  interfaces.FreetRepository
}

func NewSourceService(sourceRepo interfaces.SourceRepository, freetRepo interfaces.FreetRepository) *SourceService {
	return &SourceService{sourceRepo: sourceRepo, freetRepo: freetRepo}
}

// CreateRecord 在帖子创建时由帖子服务调用
func (s *SourceService) CreateRecord(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	source, err := s.sourceRepo.Create(ctx, freetID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to create source record", err)
	}
	return source, nil
}

// DeleteRecord 在帖子删除时由帖子服务调用
func (s *SourceService) DeleteRecord(ctx context.Context, freetID primitive.ObjectID) error {
	if err := s.sourceRepo.Delete(ctx, freetID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Failed to delete source record", err)
	}
	return nil
}

// FreetByID 按ID查找帖子，不存在时返回 404 错误
func (s *SourceService) FreetByID(ctx context.Context, freetID string) (*model.Freet, error) {
	id, err := primitive.ObjectIDFromHex(freetID)
	if err != nil {
		return nil, errors.New(errors.ErrFreetNotFound, "Freet with freet ID "+freetID+" does not exist.")
	}
	freet, err := s.freetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up freet", err)
	}
	if freet == nil {
		return nil, errors.New(errors.ErrFreetNotFound, "Freet with freet ID "+freetID+" does not exist.")
	}
	return freet, nil
}

// Sources 返回帖子的全部引用来源
func (s *SourceService) Sources(ctx context.Context, freetID primitive.ObjectID) ([]string, error) {
	record, err := s.record(ctx, freetID)
	if err != nil {
		return nil, err
	}
	return record.Sources, nil
}

// AddSource 追加一条来源，允许重复
func (s *SourceService) AddSource(ctx context.Context, freetID primitive.ObjectID, source string) error {
	record, err := s.record(ctx, freetID)
	if err != nil {
		return err
	}
	record.Sources = append(record.Sources, source)
	if err := s.sourceRepo.Save(ctx, record); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Failed to save source record", err)
	}

	util.Logger.Info("添加引用来源",
		zap.String("freet_id", freetID.Hex()),
		zap.String("source", source))
	return nil
}

// SourceExists 拒绝删除一个从未添加过的来源
func (s *SourceService) SourceExists(ctx context.Context, freetID primitive.ObjectID, source string) error {
	record, err := s.record(ctx, freetID)
	if err != nil {
		return err
	}
	if !containsString(record.Sources, source) {
		return errors.New(errors.ErrSourceNotFound, "Cannot remove a source that was not originally added.")
	}
	return nil
}

// RemoveSource 删除第一个匹配的来源，不存在时静默跳过
func (s *SourceService) RemoveSource(ctx context.Context, freetID primitive.ObjectID, source string) error {
	record, err := s.record(ctx, freetID)
	if err != nil {
		return err
	}
	record.Sources = removeString(record.Sources, source)
	if err := s.sourceRepo.Save(ctx, record); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Failed to save source record", err)
	}

	util.Logger.Info("删除引用来源",
		zap.String("freet_id", freetID.Hex()),
		zap.String("source", source))
	return nil
}

func (s *SourceService) record(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	record, err := s.sourceRepo.FindByFreet(ctx, freetID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up source record", err)
	}
	if record == nil {
		return nil, errors.New(errors.ErrResourceNotFound, "Source record does not exist.")
	}
	return record, nil
}
