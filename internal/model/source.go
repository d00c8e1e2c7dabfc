package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Source 保存一条 freet 的引用来源列表，允许重复
type Source struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FreetID primitive.ObjectID `json:"freetID" bson:"freetID"`
	Sources []string           `json:"sources" bson:"sources"`
}
