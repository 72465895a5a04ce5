package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName   string             `bson:"instructor_name,omitempty" json:"instructor_name,omitempty"`
	InstructorEmail  string             `bson:"instructor_email" json:"instructor_email"`
	Status           string             `bson:"status" json:"status"`
	Feedback         *string            `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	AvailableSeats   int64              `bson:"available_seats" json:"available_seats"`
	NumberOfStudents int64              `bson:"number_of_students" json:"number_of_students"`
	CreateTime       time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime       time.Time          `bson:"update_time" json:"updateTime"`
}

// Patch 只更新非空字段($set 语义)
type Patch struct {
	Status     *string   `bson:"status,omitempty"`
	Feedback   *string   `bson:"feedback,omitempty"`
	UpdateTime time.Time `bson:"update_time"`
}
