package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role            string             `bson:"role,omitempty" json:"role,omitempty"`
	TotalStudent    *int64             `bson:"total_student,omitempty" json:"total_student,omitempty"`
	NumberOfClasses *int64             `bson:"number_of_classes,omitempty" json:"number_of_classes,omitempty"`
	NameOfClasses   []string           `bson:"name_of_classes,omitempty" json:"name_of_classes"`
	SelectedClasses []string           `bson:"selectedClasses,omitempty" json:"selectedClasses"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}

// Patch 只更新非空字段($set 语义)
type Patch struct {
	Role            *string   `bson:"role,omitempty"`
	TotalStudent    *int64    `bson:"total_student,omitempty"`
	NumberOfClasses *int64    `bson:"number_of_classes,omitempty"`
	NameOfClasses   *[]string `bson:"name_of_classes,omitempty"`
	SelectedClasses *[]string `bson:"selectedClasses,omitempty"`
	UpdateTime      time.Time `bson:"update_time"`
}
