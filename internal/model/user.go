package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User 是用户存储的只读视图，本服务只通过 ID 或用户名查询
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
}
