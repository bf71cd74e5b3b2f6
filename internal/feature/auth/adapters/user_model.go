package adapters

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"social_backend/internal/feature/auth/domain/entity"
)

// UserDocument is the MongoDB document for the users collection.
type UserDocument struct {
	ID        string     `bson:"_id"`
	Username  string     `bson:"username"`
	Email     string     `bson:"email"`
	Password  string     `bson:"password"`
	FirstName string     `bson:"firstName,omitempty"`
	LastName  string     `bson:"lastName,omitempty"`
	DOB       *time.Time `bson:"dob,omitempty"`
	CreatedAt time.Time  `bson:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt"`
}

// ToEntity converts the document to a domain entity.
func (d *UserDocument) ToEntity() *entity.User {
	return &entity.User{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		Password:  d.Password,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		DOB:       d.DOB,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// UserDocumentFromEntity converts a domain entity to a document.
func UserDocumentFromEntity(u *entity.User) *UserDocument {
	return &UserDocument{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		DOB:       u.DOB,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// profileSet builds the $set document for a profile update.
func profileSet(p entity.ProfileUpdate) bson.M {
	set := bson.M{"updatedAt": p.UpdatedAt}
	if p.FirstName != nil {
		set["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		set["lastName"] = *p.LastName
	}
	if p.DOB != nil {
		set["dob"] = *p.DOB
	}
	return set
}
