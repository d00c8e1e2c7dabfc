package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Freet 是帖子存储的只读视图
type Freet struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AuthorID     primitive.ObjectID `json:"authorId" bson:"authorId"`
	Content      string             `json:"content" bson:"content"`
	DateCreated  time.Time          `json:"dateCreated" bson:"dateCreated"`
	DateModified time.Time          `json:"dateModified" bson:"dateModified"`
}

// FreetResponse 是返回给前端的 freet 展示结构
type FreetResponse struct {
	ID           string `json:"_id"`
	Author       string `json:"author"`
	Content      string `json:"content"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
}

const freetDateFormat = "January 2 2006, 3:04:05 pm"

// NewFreetResponse 把存储层的 freet 转换成展示结构
func NewFreetResponse(freet *Freet, authorUsername string) *FreetResponse {
	return &FreetResponse{
		ID:           freet.ID.Hex(),
		Author:       authorUsername,
		Content:      freet.Content,
		DateCreated:  freet.DateCreated.Format(freetDateFormat),
		DateModified: freet.DateModified.Format(freetDateFormat),
	}
}
