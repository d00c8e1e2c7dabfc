package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes 建立外键字段的唯一索引。
// 每个用户/帖子只允许一条记录，唯一性在这里保证而不是在应用逻辑里。
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection("follows").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userID", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	if _, err := db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "freetID", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	if _, err := db.Collection("sources").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "freetID", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	return nil
}
