package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Like 保存一条 freet 的点赞数和点赞用户列表。
// Likes 与 len(Likers) 是独立维护的冗余字段，一致性由调用方的前置检查保证。
type Like struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FreetID     primitive.ObjectID `json:"freetID" bson:"freetID"`
	Likes       int                `json:"likes" bson:"likes"`
	HiddenLikes bool               `json:"hiddenLikes" bson:"hiddenLikes"`
	Likers      []string           `json:"likers" bson:"likers"`
}
