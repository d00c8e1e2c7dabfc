package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Follow 保存一个用户的粉丝列表和关注列表。
// 每个用户对应唯一一条记录，列表中保存的是用户名而不是用户ID。
type Follow struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userID" bson:"userID"`
	Followers []string           `json:"followers" bson:"followers"`
	Following []string           `json:"following" bson:"following"`
	IsHidden  bool               `json:"isHidden" bson:"isHidden"`
}
